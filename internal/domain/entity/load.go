package entity

// DataSource identifica a origem do roster exibido no dashboard.
type DataSource string

const (
	// SourceCSV indica que os dados vieram do arquivo de clientes.
	SourceCSV DataSource = "Arquivo CSV"
	// SourceSimulated indica que o gerador sintético foi usado.
	SourceSimulated DataSource = "Dados simulados"
)

// LoadResult é o resultado explícito do carregamento do roster: os
// registros normalizados, a origem e, quando a origem é o gerador,
// o motivo do fallback.
type LoadResult struct {
	Clients        []ClientRecord `json:"clients"`
	Source         DataSource     `json:"source"`
	FallbackReason string         `json:"fallback_reason,omitempty"`
}

// Simulated informa se o resultado veio do gerador sintético.
func (r LoadResult) Simulated() bool {
	return r.Source == SourceSimulated
}
