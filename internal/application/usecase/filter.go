package usecase

import (
	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
	"github.com/negreirosnet/netops-dashboard-go/internal/shared/types"
)

// ApplyFilters reduz o roster ao subconjunto que satisfaz os critérios:
// bairro e tipo de plano dentro das seleções, consumo atual >= mínimo e
// a restrição do modo de críticos. Seleções vazias de bairro ou tipo
// produzem resultado vazio. A função é pura e idempotente.
func ApplyFilters(clients []entity.ClientRecord, criteria types.FilterCriteria) []entity.ClientRecord {
	bairros := toSet(criteria.Bairros)
	tipos := toSet(criteria.Tipos)

	filtered := []entity.ClientRecord{}
	for _, c := range clients {
		if !bairros[c.Bairro] || !tipos[c.TipoPlano] {
			continue
		}
		if c.ConsumoAtualMBs < criteria.ConsumoMin {
			continue
		}
		switch criteria.Criticos {
		case types.CriticosApenas:
			if !c.Excedeu {
				continue
			}
		case types.CriticosSem:
			if c.Excedeu {
				continue
			}
		}
		filtered = append(filtered, c)
	}

	return filtered
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
