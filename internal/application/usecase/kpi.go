package usecase

import (
	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
)

// ComputeKPIs calcula os indicadores do dashboard sobre um roster
// (filtrado ou não). O roster vazio é um ramo explícito: contagens
// zero, médias 0.0 e bairro top "-". O bairro mais frequente desempata
// pelo menor nome em ordem lexicográfica.
func ComputeKPIs(clients []entity.ClientRecord) entity.KPISummary {
	if len(clients) == 0 {
		return entity.KPISummary{
			TotalClientes:   0,
			TotalCriticos:   0,
			TotalCriticos50: 0,
			ConsumoMedio:    0.0,
			BairroTop:       "-",
			PercCriticos:    0.0,
		}
	}

	total := len(clients)
	criticos := 0
	criticos50 := 0
	somaConsumo := 0.0
	porBairro := map[string]int{}

	for _, c := range clients {
		if c.Excedeu {
			criticos++
		}
		if c.Excedeu50 {
			criticos50++
		}
		somaConsumo += c.ConsumoAtualMBs
		porBairro[c.Bairro]++
	}

	bairroTop := ""
	topCount := 0
	for bairro, count := range porBairro {
		if count > topCount || (count == topCount && bairro < bairroTop) {
			bairroTop = bairro
			topCount = count
		}
	}

	return entity.KPISummary{
		TotalClientes:   total,
		TotalCriticos:   criticos,
		TotalCriticos50: criticos50,
		ConsumoMedio:    somaConsumo / float64(total),
		BairroTop:       bairroTop,
		PercCriticos:    float64(criticos) / float64(total) * 100.0,
	}
}
