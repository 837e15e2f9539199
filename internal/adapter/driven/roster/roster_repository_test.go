package roster

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
)

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clientes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromCSV(t *testing.T) {
	t.Parallel()

	path := writeDataFile(t,
		"ClienteID,Bairro,Plano (MB/s),Tipo de Plano,Consumo Atual (MB/s)\n"+
			"1,Centro,50,Residencial,60\n"+
			"2, Centro ,100,Residencial,50\n"+
			"3,Areia Branca,50,Premium,80\n")

	result, err := NewRosterRepository().Load(context.Background(), path, 150)
	require.NoError(t, err)

	assert.Equal(t, entity.SourceCSV, result.Source)
	assert.False(t, result.Simulated())
	assert.Empty(t, result.FallbackReason)
	require.Len(t, result.Clients, 3)

	assert.Equal(t, "001", result.Clients[0].ClienteID)
	assert.Equal(t, "002", result.Clients[1].ClienteID)
	assert.Equal(t, "Centro", result.Clients[1].Bairro, "bairro must be trimmed")

	assert.True(t, result.Clients[0].Excedeu)
	assert.False(t, result.Clients[1].Excedeu)
	assert.True(t, result.Clients[2].Excedeu)

	require.NotNil(t, result.Clients[2].Lat)
	assert.InDelta(t, -9.4080, *result.Clients[2].Lat, 1e-9)
}

func TestLoadCleansEmbeddedNewlinesInHeaders(t *testing.T) {
	t.Parallel()

	path := writeDataFile(t,
		"ClienteID,Bairro,\"Plano\n(MB/s)\",\" Tipo de Plano \",\"Consumo Atual\n(MB/s)\"\n"+
			"1,Centro,50,Residencial,60\n")

	result, err := NewRosterRepository().Load(context.Background(), path, 150)
	require.NoError(t, err)

	assert.Equal(t, entity.SourceCSV, result.Source)
	require.Len(t, result.Clients, 1)
	assert.Equal(t, 50.0, result.Clients[0].PlanoMBs)
	assert.Equal(t, 60.0, result.Clients[0].ConsumoAtualMBs)
}

func TestLoadDropsRowsWithBadCells(t *testing.T) {
	t.Parallel()

	path := writeDataFile(t,
		"ClienteID,Bairro,Plano (MB/s),Tipo de Plano,Consumo Atual (MB/s)\n"+
			"1,Centro,50,Residencial,60\n"+
			"2,Centro,not-a-number,Residencial,50\n"+
			"3,,50,Premium,80\n"+
			"4,Centro,100,,90\n"+
			"5,Centro,100,Premium,\n")

	result, err := NewRosterRepository().Load(context.Background(), path, 150)
	require.NoError(t, err)

	assert.Equal(t, entity.SourceCSV, result.Source)
	require.Len(t, result.Clients, 1)
	assert.Equal(t, "001", result.Clients[0].ClienteID)
}

func TestLoadFallsBackWhenFileMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nao-existe.csv")

	result, err := NewRosterRepository().Load(context.Background(), path, 150)
	require.NoError(t, err)

	assert.Equal(t, entity.SourceSimulated, result.Source)
	assert.True(t, result.Simulated())
	assert.NotEmpty(t, result.FallbackReason)
	require.Len(t, result.Clients, 150)

	for _, c := range result.Clients {
		_, known := entity.LookupBairro(c.Bairro)
		assert.True(t, known, "bairro %q must be in the coordinate table", c.Bairro)
		assert.Len(t, c.ClienteID, 3)
	}
}

func TestLoadFallsBackWhenColumnsMissing(t *testing.T) {
	t.Parallel()

	path := writeDataFile(t,
		"ClienteID,Bairro,Plano (MB/s)\n"+
			"1,Centro,50\n")

	result, err := NewRosterRepository().Load(context.Background(), path, 20)
	require.NoError(t, err)

	assert.Equal(t, entity.SourceSimulated, result.Source)
	assert.Contains(t, result.FallbackReason, "missing required column")
	assert.Len(t, result.Clients, 20)
}

func TestLoadMemoizesByPath(t *testing.T) {
	t.Parallel()

	path := writeDataFile(t,
		"ClienteID,Bairro,Plano (MB/s),Tipo de Plano,Consumo Atual (MB/s)\n"+
			"1,Centro,50,Residencial,60\n")

	repo := NewRosterRepository()

	first, err := repo.Load(context.Background(), path, 150)
	require.NoError(t, err)
	require.Len(t, first.Clients, 1)

	// Reescreve o arquivo: o resultado memoizado deve prevalecer.
	require.NoError(t, os.WriteFile(path, []byte(
		"ClienteID,Bairro,Plano (MB/s),Tipo de Plano,Consumo Atual (MB/s)\n"+
			"1,Centro,50,Residencial,60\n"+
			"2,Centro,100,Premium,90\n"), 0644))

	second, err := repo.Load(context.Background(), path, 150)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Um repositório novo enxerga o arquivo atualizado.
	fresh, err := NewRosterRepository().Load(context.Background(), path, 150)
	require.NoError(t, err)
	assert.Len(t, fresh.Clients, 2)
}

func TestLoadHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRosterRepository().Load(ctx, "qualquer.csv", 150)
	assert.ErrorIs(t, err, context.Canceled)
}
