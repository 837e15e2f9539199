package console

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/negreirosnet/netops-dashboard-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// Cores predefinidas para uso consistente
var (
	BrightCyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
	BrightGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
	BoldRed     = color.New(color.FgRed, color.Bold).SprintFunc()
)

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayBarChart exibe um gráfico de barras horizontal rotulado.
func (c *Console) DisplayBarChart(title string, bars []types.BarDatum) {
	if len(bars) == 0 {
		pterm.Info.Println("Sem dados para o gráfico.")
		return
	}

	maxValue := 0.0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	tableData := pterm.TableData{}
	for _, b := range bars {
		barLength := int((b.Value / maxValue) * 40)
		bar := strings.Repeat("█", barLength)
		tableData = append(tableData, []string{
			b.Label,
			fmt.Sprintf("%.0f", b.Value),
			pterm.FgCyan.Sprint(bar),
		})
	}

	table := pterm.DefaultTable.WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

// DisplayTrendBars exibe os doze meses de consumo sintetizado de um
// bairro como barras, com a variação mês a mês.
func (c *Console) DisplayTrendBars(title string, monthly []types.MonthlyUsage) {
	maxMBs := 0.0
	for _, m := range monthly {
		if m.MBs > maxMBs {
			maxMBs = m.MBs
		}
	}

	if maxMBs == 0 {
		pterm.Warning.Println("All usage values are 0 MB/s for this period")
		return
	}

	tableData := pterm.TableData{
		{"Mês", "Consumo Médio", "", "Variação"},
	}

	var prevMBs *float64

	for _, m := range monthly {
		barLength := int((m.MBs / maxMBs) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prevMBs != nil {
			if *prevMBs < 0.01 {
				if m.MBs < 0.01 {
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else {
					change = pterm.FgRed.Sprint("N/A")
					barColor = pterm.FgRed.Sprint(bar)
				}
			} else {
				changePercent := ((m.MBs - *prevMBs) / *prevMBs) * 100.0

				if math.Abs(changePercent) < 0.01 {
					change = pterm.FgYellow.Sprintf("0%%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else if changePercent > 0 {
					change = pterm.FgRed.Sprintf("+%.2f%%", changePercent)
					barColor = pterm.FgRed.Sprint(bar)
				} else {
					change = pterm.FgGreen.Sprintf("%.2f%%", changePercent)
					barColor = pterm.FgGreen.Sprint(bar)
				}
			}
		}

		tableData = append(tableData, []string{
			m.Month,
			fmt.Sprintf("%.1f MB/s", m.MBs),
			barColor,
			change,
		})

		currentMBs := m.MBs
		prevMBs = &currentMBs
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// MultiSelect exibe um seletor múltiplo com todas as opções
// pré-selecionadas, espelhando o padrão dos filtros do dashboard.
func (c *Console) MultiSelect(label string, options []string) ([]string, error) {
	selected, err := pterm.DefaultInteractiveMultiselect.
		WithOptions(options).
		WithDefaultOptions(options).
		Show(label)
	if err != nil {
		return nil, fmt.Errorf("error reading selection for %q: %w", label, err)
	}
	return selected, nil
}

// Select exibe um seletor de escolha única.
func (c *Console) Select(label string, options []string) (string, error) {
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		Show(label)
	if err != nil {
		return "", fmt.Errorf("error reading choice for %q: %w", label, err)
	}
	return choice, nil
}

// PromptNumber lê um valor numérico dentro de [min, max]; entrada vazia
// usa o valor padrão.
func (c *Console) PromptNumber(label string, def, min, max float64) (float64, error) {
	prompt := fmt.Sprintf("%s [%g-%g]", label, min, max)
	for {
		text, err := pterm.DefaultInteractiveTextInput.
			WithDefaultValue(strconv.FormatFloat(def, 'f', -1, 64)).
			Show(prompt)
		if err != nil {
			return 0, fmt.Errorf("error reading value for %q: %w", label, err)
		}

		text = strings.TrimSpace(text)
		if text == "" {
			return def, nil
		}

		value, err := strconv.ParseFloat(text, 64)
		if err != nil || value < min || value > max {
			pterm.Warning.Printfln("Informe um número entre %g e %g", min, max)
			continue
		}
		return value, nil
	}
}
