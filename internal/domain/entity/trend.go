package entity

// TrendMonths são os doze rótulos de mês usados na tendência mensal,
// em ordem de calendário.
var TrendMonths = []string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// TrendPoint representa o consumo médio sintetizado de um bairro em um
// mês, usado nos gráficos de tendência.
type TrendPoint struct {
	Bairro       string  `json:"bairro"`
	Mes          string  `json:"mes"`
	ConsumoMedio float64 `json:"consumo_medio"`
}

// BairroBase é o valor de consumo base de um bairro que alimenta a
// síntese de tendência. Base NaN indica bairro sem dados.
type BairroBase struct {
	Bairro string
	Base   float64
}
