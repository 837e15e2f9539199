package types

// CriticalMode restringe o roster pela flag Excedeu.
type CriticalMode string

const (
	CriticosTodos  CriticalMode = "todos"
	CriticosApenas CriticalMode = "apenas-criticos"
	CriticosSem    CriticalMode = "sem-criticos"
)

// ParseCriticalMode valida o valor vindo da CLI ou da configuração.
func ParseCriticalMode(value string) (CriticalMode, error) {
	switch CriticalMode(value) {
	case CriticosTodos, CriticosApenas, CriticosSem:
		return CriticalMode(value), nil
	case "":
		return CriticosTodos, nil
	}
	return "", ErrInvalidCriticalMode
}

// FilterCriteria são os critérios de filtragem do roster. Seleções
// vazias de bairro ou tipo produzem resultado vazio.
type FilterCriteria struct {
	Bairros    []string
	Tipos      []string
	Criticos   CriticalMode
	ConsumoMin float64
}
