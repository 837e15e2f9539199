package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
	"github.com/negreirosnet/netops-dashboard-go/internal/shared/types"
)

func sampleRoster() []entity.ClientRecord {
	clients := []entity.ClientRecord{
		{ClienteID: "001", Bairro: "Centro", TipoPlano: "Residencial", PlanoMBs: 50, ConsumoAtualMBs: 60},
		{ClienteID: "002", Bairro: "Centro", TipoPlano: "Residencial", PlanoMBs: 100, ConsumoAtualMBs: 50},
		{ClienteID: "003", Bairro: "Areia Branca", TipoPlano: "Premium", PlanoMBs: 50, ConsumoAtualMBs: 80},
	}
	for i := range clients {
		clients[i].ComputeFlags()
	}
	return clients
}

func TestApplyFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria types.FilterCriteria
		wantIDs  []string
	}{
		{
			name: "all pass through",
			criteria: types.FilterCriteria{
				Bairros:  []string{"Centro", "Areia Branca"},
				Tipos:    []string{"Residencial", "Premium"},
				Criticos: types.CriticosTodos,
			},
			wantIDs: []string{"001", "002", "003"},
		},
		{
			name: "single neighborhood",
			criteria: types.FilterCriteria{
				Bairros:  []string{"Centro"},
				Tipos:    []string{"Residencial", "Premium"},
				Criticos: types.CriticosTodos,
			},
			wantIDs: []string{"001", "002"},
		},
		{
			name: "empty neighborhood selection yields empty result",
			criteria: types.FilterCriteria{
				Bairros:  nil,
				Tipos:    []string{"Residencial", "Premium"},
				Criticos: types.CriticosTodos,
			},
			wantIDs: []string{},
		},
		{
			name: "empty tier selection yields empty result",
			criteria: types.FilterCriteria{
				Bairros:  []string{"Centro"},
				Tipos:    nil,
				Criticos: types.CriticosTodos,
			},
			wantIDs: []string{},
		},
		{
			name: "critical only",
			criteria: types.FilterCriteria{
				Bairros:  []string{"Centro", "Areia Branca"},
				Tipos:    []string{"Residencial", "Premium"},
				Criticos: types.CriticosApenas,
			},
			wantIDs: []string{"001", "003"},
		},
		{
			name: "non-critical only",
			criteria: types.FilterCriteria{
				Bairros:  []string{"Centro", "Areia Branca"},
				Tipos:    []string{"Residencial", "Premium"},
				Criticos: types.CriticosSem,
			},
			wantIDs: []string{"002"},
		},
		{
			name: "usage threshold",
			criteria: types.FilterCriteria{
				Bairros:    []string{"Centro", "Areia Branca"},
				Tipos:      []string{"Residencial", "Premium"},
				Criticos:   types.CriticosTodos,
				ConsumoMin: 60,
			},
			wantIDs: []string{"001", "003"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filtered := ApplyFilters(sampleRoster(), tt.criteria)

			ids := make([]string, 0, len(filtered))
			for _, c := range filtered {
				ids = append(ids, c.ClienteID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApplyFiltersIdempotent(t *testing.T) {
	t.Parallel()

	criteria := types.FilterCriteria{
		Bairros:    []string{"Centro"},
		Tipos:      []string{"Residencial"},
		Criticos:   types.CriticosApenas,
		ConsumoMin: 10,
	}

	once := ApplyFilters(sampleRoster(), criteria)
	twice := ApplyFilters(once, criteria)

	assert.Equal(t, once, twice)
}

func TestParseCriticalMode(t *testing.T) {
	t.Parallel()

	mode, err := types.ParseCriticalMode("")
	assert.NoError(t, err)
	assert.Equal(t, types.CriticosTodos, mode)

	mode, err = types.ParseCriticalMode("apenas-criticos")
	assert.NoError(t, err)
	assert.Equal(t, types.CriticosApenas, mode)

	_, err = types.ParseCriticalMode("invalido")
	assert.ErrorIs(t, err, types.ErrInvalidCriticalMode)
}
