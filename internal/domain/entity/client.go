package entity

import (
	"math"
	"sort"
)

// ClientRecord representa um cliente da base de monitoramento: plano
// contratado, consumo medido e as flags derivadas de criticidade.
type ClientRecord struct {
	ClienteID       string   `json:"cliente_id"`
	Bairro          string   `json:"bairro"`
	PlanoMBs        float64  `json:"plano_mbs"`
	TipoPlano       string   `json:"tipo_plano"`
	ConsumoAtualMBs float64  `json:"consumo_atual_mbs"`
	Excedeu         bool     `json:"excedeu"`
	Excedeu50       bool     `json:"excedeu50"`
	Lat             *float64 `json:"lat,omitempty"`
	Lon             *float64 `json:"lon,omitempty"`
}

// ComputeFlags preenche Excedeu e Excedeu50 a partir do plano e do
// consumo atual. Excedeu50 implica Excedeu.
func (c *ClientRecord) ComputeFlags() {
	c.Excedeu = c.ConsumoAtualMBs > c.PlanoMBs
	c.Excedeu50 = c.ConsumoAtualMBs > c.PlanoMBs*1.5
}

// AttachCoordinates resolve Lat/Lon via tabela de coordenadas do
// bairro. Bairro desconhecido deixa o par indefinido (nil).
func (c *ClientRecord) AttachCoordinates() {
	coord, ok := LookupBairro(c.Bairro)
	if !ok {
		c.Lat = nil
		c.Lon = nil
		return
	}
	lat, lon := coord.Lat, coord.Lon
	c.Lat = &lat
	c.Lon = &lon
}

// Valid informa se o registro sobrevive à normalização: plano, consumo,
// tipo e bairro precisam estar definidos.
func (c *ClientRecord) Valid() bool {
	if c.Bairro == "" || c.TipoPlano == "" {
		return false
	}
	if math.IsNaN(c.PlanoMBs) || math.IsNaN(c.ConsumoAtualMBs) {
		return false
	}
	return true
}

// DistinctBairros retorna os bairros presentes no roster, ordenados.
func DistinctBairros(clients []ClientRecord) []string {
	return distinctField(clients, func(c ClientRecord) string { return c.Bairro })
}

// DistinctTipos retorna os tipos de plano presentes no roster, ordenados.
func DistinctTipos(clients []ClientRecord) []string {
	return distinctField(clients, func(c ClientRecord) string { return c.TipoPlano })
}

func distinctField(clients []ClientRecord, field func(ClientRecord) string) []string {
	seen := map[string]bool{}
	values := []string{}
	for _, c := range clients {
		v := field(c)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// MaxConsumo retorna o maior consumo atual do roster (0 quando vazio).
func MaxConsumo(clients []ClientRecord) float64 {
	max := 0.0
	for _, c := range clients {
		if c.ConsumoAtualMBs > max {
			max = c.ConsumoAtualMBs
		}
	}
	return max
}
