package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayBarChart(title string, bars []BarDatum)
	DisplayTrendBars(title string, monthly []MonthlyUsage)

	// Widgets interativos dos filtros de análise.
	MultiSelect(label string, options []string) ([]string, error)
	Select(label string, options []string) (string, error)
	PromptNumber(label string, def, min, max float64) (float64, error)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// BarDatum é uma barra rotulada de um gráfico de barras.
type BarDatum struct {
	Label string
	Value float64
}

// MonthlyUsage representa o consumo médio de um mês específico, usado
// para gráficos de tendência.
type MonthlyUsage struct {
	Month string  `json:"month"`
	MBs   float64 `json:"mbs"`
}
