package usecase

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
)

// trendSeed fixa a semente da síntese de tendência: a mesma entrada
// produz sempre a mesma série mensal.
const trendSeed = 2024

// trendDrift é o acréscimo linear por índice de mês.
const trendDrift = 1.2

// TrendSynthesizer fabrica doze meses de consumo médio plausível por
// bairro a partir do consumo base atual. A saída é pura em relação à
// tupla ordenada (bairro, base) e memoizada por essa tupla.
type TrendSynthesizer struct {
	mu    sync.Mutex
	cache map[string][]entity.TrendPoint
}

// NewTrendSynthesizer cria um sintetizador com cache vazio.
func NewTrendSynthesizer() *TrendSynthesizer {
	return &TrendSynthesizer{cache: map[string][]entity.TrendPoint{}}
}

// Synthesize devolve um ponto por (bairro, mês). Base NaN (bairro sem
// dados) é substituída por um valor semeado em [60, 200). O valor de
// cada mês é base + ruído normal (desvio 12) + deriva linear, com piso
// em zero.
func (s *TrendSynthesizer) Synthesize(bases []entity.BairroBase) []entity.TrendPoint {
	if len(bases) == 0 {
		return []entity.TrendPoint{}
	}

	sorted := make([]entity.BairroBase, len(bases))
	copy(sorted, bases)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Bairro < sorted[j].Bairro })

	key := cacheKeyFor(sorted)

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache[key]; ok {
		return cached
	}

	rng := rand.New(rand.NewSource(trendSeed))
	points := make([]entity.TrendPoint, 0, len(sorted)*len(entity.TrendMonths))

	for _, bb := range sorted {
		base := bb.Base
		if math.IsNaN(base) {
			base = 60 + rng.Float64()*140
		}
		for idx, mes := range entity.TrendMonths {
			value := base + rng.NormFloat64()*12 + float64(idx)*trendDrift
			if value < 0 {
				value = 0
			}
			points = append(points, entity.TrendPoint{
				Bairro:       bb.Bairro,
				Mes:          mes,
				ConsumoMedio: value,
			})
		}
	}

	s.cache[key] = points
	return points
}

// BairroBases calcula o consumo médio por bairro do roster, já na
// forma ordenada que alimenta o sintetizador.
func BairroBases(clients []entity.ClientRecord) []entity.BairroBase {
	somas := map[string]float64{}
	contagens := map[string]int{}
	for _, c := range clients {
		somas[c.Bairro] += c.ConsumoAtualMBs
		contagens[c.Bairro]++
	}

	bases := make([]entity.BairroBase, 0, len(somas))
	for bairro, soma := range somas {
		bases = append(bases, entity.BairroBase{
			Bairro: bairro,
			Base:   soma / float64(contagens[bairro]),
		})
	}
	sort.Slice(bases, func(i, j int) bool { return bases[i].Bairro < bases[j].Bairro })
	return bases
}

func cacheKeyFor(sorted []entity.BairroBase) string {
	var b strings.Builder
	for _, bb := range sorted {
		fmt.Fprintf(&b, "%s=%.6f;", bb.Bairro, bb.Base)
	}
	return b.String()
}
