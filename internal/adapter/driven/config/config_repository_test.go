package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "dashboard.toml", `
data_file = "clientes_petrolina.csv"
synthetic_count = 80
bairros = ["Centro", "Vila Mocó"]
criticos = "apenas-criticos"
consumo_min = 40.0
report_type = ["csv", "pdf"]
`)

	config, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "clientes_petrolina.csv", config.DataFile)
	assert.Equal(t, 80, config.SyntheticCount)
	assert.Equal(t, []string{"Centro", "Vila Mocó"}, config.Bairros)
	assert.Equal(t, "apenas-criticos", config.Criticos)
	assert.Equal(t, 40.0, config.ConsumoMin)
	assert.Equal(t, []string{"csv", "pdf"}, config.ReportType)
}

func TestLoadConfigFileYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "dashboard.yaml", `
data_file: clientes.csv
tipos:
  - Residencial
  - Premium
trend: true
`)

	config, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "clientes.csv", config.DataFile)
	assert.Equal(t, []string{"Residencial", "Premium"}, config.Tipos)
	assert.True(t, config.Trend)
}

func TestLoadConfigFileJSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "dashboard.json", `{
  "data_file": "clientes.csv",
  "report_name": "relatorio",
  "consumo_min": 25
}`)

	config, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "clientes.csv", config.DataFile)
	assert.Equal(t, "relatorio", config.ReportName)
	assert.Equal(t, 25.0, config.ConsumoMin)
}

func TestLoadConfigFileErrors(t *testing.T) {
	t.Parallel()

	_, err := NewConfigRepository().LoadConfigFile(filepath.Join(t.TempDir(), "nao-existe.toml"))
	assert.Error(t, err)

	dir := t.TempDir()
	_, err = NewConfigRepository().LoadConfigFile(dir)
	assert.Error(t, err)

	path := writeConfig(t, "dashboard.ini", "data_file=clientes.csv")
	_, err = NewConfigRepository().LoadConfigFile(path)
	assert.ErrorContains(t, err, "unsupported config file format")
}
