package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
)

func TestSynthesizeShape(t *testing.T) {
	t.Parallel()

	bases := []entity.BairroBase{
		{Bairro: "Centro", Base: 120},
		{Bairro: "Areia Branca", Base: 90},
	}

	points := NewTrendSynthesizer().Synthesize(bases)
	require.Len(t, points, 2*len(entity.TrendMonths))

	// Bairros em ordem alfabética, meses em ordem de calendário.
	for i, mes := range entity.TrendMonths {
		assert.Equal(t, "Areia Branca", points[i].Bairro)
		assert.Equal(t, mes, points[i].Mes)
	}
	for i, mes := range entity.TrendMonths {
		assert.Equal(t, "Centro", points[len(entity.TrendMonths)+i].Bairro)
		assert.Equal(t, mes, points[len(entity.TrendMonths)+i].Mes)
	}

	for _, p := range points {
		assert.GreaterOrEqual(t, p.ConsumoMedio, 0.0)
	}
}

func TestSynthesizeIsPure(t *testing.T) {
	t.Parallel()

	bases := []entity.BairroBase{
		{Bairro: "Centro", Base: 120},
		{Bairro: "Dom Avelar", Base: 75.5},
	}

	first := NewTrendSynthesizer().Synthesize(bases)
	second := NewTrendSynthesizer().Synthesize(bases)

	assert.Equal(t, first, second, "identical input tuples must yield identical output")
}

func TestSynthesizeIgnoresInputOrder(t *testing.T) {
	t.Parallel()

	ordered := []entity.BairroBase{
		{Bairro: "Centro", Base: 120},
		{Bairro: "Vila Mocó", Base: 80},
	}
	shuffled := []entity.BairroBase{
		{Bairro: "Vila Mocó", Base: 80},
		{Bairro: "Centro", Base: 120},
	}

	s := NewTrendSynthesizer()
	assert.Equal(t, s.Synthesize(ordered), s.Synthesize(shuffled))
}

func TestSynthesizeMemoizes(t *testing.T) {
	t.Parallel()

	bases := []entity.BairroBase{{Bairro: "Centro", Base: 100}}

	s := NewTrendSynthesizer()
	first := s.Synthesize(bases)
	second := s.Synthesize(bases)

	require.NotEmpty(t, first)
	assert.Same(t, &first[0], &second[0], "second call must return the cached slice")
}

func TestSynthesizeSubstitutesMissingBase(t *testing.T) {
	t.Parallel()

	points := NewTrendSynthesizer().Synthesize([]entity.BairroBase{
		{Bairro: "Pedra Linda", Base: math.NaN()},
	})

	require.Len(t, points, len(entity.TrendMonths))
	for _, p := range points {
		assert.False(t, math.IsNaN(p.ConsumoMedio))
		assert.GreaterOrEqual(t, p.ConsumoMedio, 0.0)
		// Base substituta em [60,200) mais ruído e deriva limitados.
		assert.Less(t, p.ConsumoMedio, 320.0)
	}
}

func TestSynthesizeEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewTrendSynthesizer().Synthesize(nil))
}

func TestBairroBases(t *testing.T) {
	t.Parallel()

	clients := []entity.ClientRecord{
		{Bairro: "Centro", ConsumoAtualMBs: 60},
		{Bairro: "Centro", ConsumoAtualMBs: 50},
		{Bairro: "Areia Branca", ConsumoAtualMBs: 80},
	}

	bases := BairroBases(clients)
	require.Len(t, bases, 2)

	assert.Equal(t, "Areia Branca", bases[0].Bairro)
	assert.InDelta(t, 80.0, bases[0].Base, 1e-9)
	assert.Equal(t, "Centro", bases[1].Bairro)
	assert.InDelta(t, 55.0, bases[1].Base, 1e-9)
}
