package entity

// KPISummary contém os indicadores estratégicos calculados sobre um
// roster (filtrado ou não).
type KPISummary struct {
	TotalClientes   int     `json:"total_clientes"`
	TotalCriticos   int     `json:"total_criticos"`
	TotalCriticos50 int     `json:"total_criticos50"`
	ConsumoMedio    float64 `json:"consumo_medio"`
	BairroTop       string  `json:"bairro_top"`
	PercCriticos    float64 `json:"perc_criticos"`
}
