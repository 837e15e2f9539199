package entity

import "sort"

// Coordinate é um par latitude/longitude de um bairro de Petrolina.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// bairroCoords é a tabela estática de coordenadas dos bairros
// atendidos. Bairros fora desta tabela não aparecem no mapa.
var bairroCoords = map[string]Coordinate{
	"Centro":             {Lat: -9.3890, Lon: -40.5020},
	"Areia Branca":       {Lat: -9.4080, Lon: -40.5260},
	"Cohab Massangano":   {Lat: -9.4110, Lon: -40.5000},
	"Jardim Maravilha":   {Lat: -9.4200, Lon: -40.5100},
	"Gercino Coelho":     {Lat: -9.4300, Lon: -40.4950},
	"Dom Avelar":         {Lat: -9.4400, Lon: -40.5000},
	"José e Maria":       {Lat: -9.4500, Lon: -40.5050},
	"Pedra Linda":        {Lat: -9.4600, Lon: -40.5100},
	"Vila Mocó":          {Lat: -9.4700, Lon: -40.5200},
	"Vale do Grande Rio": {Lat: -9.4800, Lon: -40.5300},
}

// LookupBairro retorna as coordenadas de um bairro conhecido.
func LookupBairro(name string) (Coordinate, bool) {
	coord, ok := bairroCoords[name]
	return coord, ok
}

// BairroNames retorna os nomes de bairro da tabela, ordenados.
func BairroNames() []string {
	names := make([]string, 0, len(bairroCoords))
	for name := range bairroCoords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
