package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negreirosnet/netops-dashboard-go/internal/adapter/driven/roster"
	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
)

func coordPtr(v float64) *float64 { return &v }

func exportRoster() []entity.ClientRecord {
	clients := []entity.ClientRecord{
		{ClienteID: "001", Bairro: "Centro", TipoPlano: "Residencial", PlanoMBs: 50, ConsumoAtualMBs: 60, Lat: coordPtr(-9.3890), Lon: coordPtr(-40.5020)},
		{ClienteID: "002", Bairro: "Centro", TipoPlano: "Residencial", PlanoMBs: 100, ConsumoAtualMBs: 50, Lat: coordPtr(-9.3890), Lon: coordPtr(-40.5020)},
		{ClienteID: "003", Bairro: "Bairro Novo", TipoPlano: "Premium", PlanoMBs: 50, ConsumoAtualMBs: 80},
	}
	for i := range clients {
		clients[i].ComputeFlags()
	}
	return clients
}

func TestExportToCSVRoundTrip(t *testing.T) {
	t.Parallel()

	clients := exportRoster()
	repo := NewExportRepository()

	path, err := repo.ExportToCSV(clients, "clientes_filtrados", t.TempDir())
	require.NoError(t, err)
	require.FileExists(t, path)

	// Reimporta pelo loader: mesmas linhas e valores.
	result, err := roster.NewRosterRepository().Load(context.Background(), path, 150)
	require.NoError(t, err)

	assert.Equal(t, entity.SourceCSV, result.Source)
	require.Len(t, result.Clients, len(clients))

	for i, c := range result.Clients {
		assert.Equal(t, clients[i].ClienteID, c.ClienteID)
		assert.Equal(t, clients[i].Bairro, c.Bairro)
		assert.Equal(t, clients[i].PlanoMBs, c.PlanoMBs)
		assert.Equal(t, clients[i].TipoPlano, c.TipoPlano)
		assert.Equal(t, clients[i].ConsumoAtualMBs, c.ConsumoAtualMBs)
		assert.Equal(t, clients[i].Excedeu, c.Excedeu)
		assert.Equal(t, clients[i].Excedeu50, c.Excedeu50)
	}
}

func TestExportToCSVHeaderAndCoordinates(t *testing.T) {
	t.Parallel()

	path, err := NewExportRepository().ExportToCSV(exportRoster(), "clientes", t.TempDir())
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{
		"ClienteID", "Bairro", "Plano (MB/s)", "Tipo de Plano",
		"Consumo Atual (MB/s)", "Excedeu", "Excedeu50", "Lat", "Lon",
	}, rows[0])

	// Bairro conhecido carrega coordenadas; desconhecido exporta vazio.
	assert.Equal(t, "-9.3890", rows[1][7])
	assert.Equal(t, "-40.5020", rows[1][8])
	assert.Equal(t, "", rows[3][7])
	assert.Equal(t, "", rows[3][8])
}

func TestExportToJSON(t *testing.T) {
	t.Parallel()

	clients := exportRoster()
	kpis := entity.KPISummary{TotalClientes: 3, TotalCriticos: 2, ConsumoMedio: 63.3, BairroTop: "Centro", PercCriticos: 66.7}

	path, err := NewExportRepository().ExportToJSON(clients, kpis, entity.SourceCSV, "clientes", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report struct {
		Source  string                `json:"source"`
		KPIs    entity.KPISummary     `json:"kpis"`
		Clients []entity.ClientRecord `json:"clients"`
	}
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, "Arquivo CSV", report.Source)
	assert.Equal(t, kpis, report.KPIs)
	assert.Len(t, report.Clients, 3)
	assert.Equal(t, "001", report.Clients[0].ClienteID)
}

func TestExportToXLSX(t *testing.T) {
	t.Parallel()

	kpis := entity.KPISummary{TotalClientes: 3, BairroTop: "Centro"}

	path, err := NewExportRepository().ExportToXLSX(exportRoster(), kpis, "clientes", t.TempDir())
	require.NoError(t, err)
	require.FileExists(t, path)
	assert.True(t, strings.HasSuffix(path, ".xlsx"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportToPDF(t *testing.T) {
	t.Parallel()

	kpis := entity.KPISummary{TotalClientes: 3, TotalCriticos: 2, ConsumoMedio: 63.3, BairroTop: "Centro", PercCriticos: 66.7}

	path, err := NewExportRepository().ExportToPDF(exportRoster(), kpis, entity.SourceSimulated, "clientes", t.TempDir())
	require.NoError(t, err)
	require.FileExists(t, path)
	assert.True(t, strings.HasSuffix(path, ".pdf"))
}

func TestGenerateFilename(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := generateFilename("relatorio", dir, "csv")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, ".csv"))
	assert.Contains(t, path, "relatorio_")
}
