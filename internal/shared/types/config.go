package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	DataFile       string   `json:"data_file" yaml:"data_file" toml:"data_file"`
	SyntheticCount int      `json:"synthetic_count" yaml:"synthetic_count" toml:"synthetic_count"`
	Bairros        []string `json:"bairros" yaml:"bairros" toml:"bairros"`
	Tipos          []string `json:"tipos" yaml:"tipos" toml:"tipos"`
	Criticos       string   `json:"criticos" yaml:"criticos" toml:"criticos"`
	ConsumoMin     float64  `json:"consumo_min" yaml:"consumo_min" toml:"consumo_min"`
	ReportName     string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType     []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
	Trend          bool     `json:"trend" yaml:"trend" toml:"trend"`
}
