package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	DataFile       string
	SyntheticCount int
	Bairros        []string
	Tipos          []string
	Criticos       string
	ConsumoMin     float64
	Interactive    bool
	Trend          bool
	ReportName     string
	ReportType     []string
	Dir            string
	NoBanner       bool

	// BairrosSet/TiposSet distinguem "flag não informada" (seleciona
	// todos os valores do roster) de uma seleção explícita, inclusive
	// a seleção explicitamente vazia.
	BairrosSet bool
	TiposSet   bool
}
