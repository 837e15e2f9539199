package roster

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
	"github.com/negreirosnet/netops-dashboard-go/internal/domain/repository"
)

// Cabeçalhos esperados no arquivo de clientes, após a limpeza.
const (
	colClienteID = "ClienteID"
	colBairro    = "Bairro"
	colPlano     = "Plano (MB/s)"
	colTipoPlano = "Tipo de Plano"
	colConsumo   = "Consumo Atual (MB/s)"
)

var requiredColumns = []string{colClienteID, colPlano, colConsumo, colTipoPlano, colBairro}

// DefaultDataFile é o arquivo de clientes procurado quando nenhum
// caminho é informado.
const DefaultDataFile = "clientes_petrolina.csv"

// RosterRepositoryImpl implementa o RosterRepository lendo o CSV de
// clientes, com fallback para o gerador sintético. Resultados são
// memoizados por (caminho absoluto, tamanho do fallback) durante a
// vida do processo.
type RosterRepositoryImpl struct {
	mu    sync.Mutex
	cache map[cacheKey]entity.LoadResult
}

type cacheKey struct {
	path  string
	count int
}

// NewRosterRepository cria uma nova implementação do RosterRepository.
func NewRosterRepository() repository.RosterRepository {
	return &RosterRepositoryImpl{cache: map[cacheKey]entity.LoadResult{}}
}

// Load implementa o contrato do RosterRepository. Nunca devolve erro
// por dados indisponíveis ou malformados: esses casos viram fallback
// sintético com o motivo registrado no resultado.
func (r *RosterRepositoryImpl) Load(ctx context.Context, path string, syntheticCount int) (entity.LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return entity.LoadResult{}, err
	}

	if path == "" {
		path = DefaultDataFile
	}
	if syntheticCount <= 0 {
		syntheticCount = DefaultSyntheticCount
	}

	key := cacheKey{path: path, count: syntheticCount}
	if abs, err := filepath.Abs(path); err == nil {
		key.path = abs
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[key]; ok {
		return cached, nil
	}

	result := loadFromFile(path)
	if result.Simulated() {
		result.Clients = GenerateSyntheticClients(syntheticCount)
	}
	result.Clients = normalizeClients(result.Clients)

	r.cache[key] = result
	return result, nil
}

// loadFromFile tenta produzir registros a partir do CSV. Qualquer
// falha resulta em Source = SourceSimulated com o motivo preenchido;
// os registros do fallback são gerados pelo chamador.
func loadFromFile(path string) entity.LoadResult {
	file, err := os.Open(path)
	if err != nil {
		return fallback(fmt.Sprintf("unable to open data file: %s", err))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Cabeçalhos podem conter quebras de linha embutidas.
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return fallback(fmt.Sprintf("unable to parse data file: %s", err))
	}
	if len(rows) == 0 {
		return fallback("data file is empty")
	}

	header := cleanColumns(rows[0])
	index := map[string]int{}
	for i, name := range header {
		index[name] = i
	}

	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return fallback(fmt.Sprintf("data file is missing required column %q", col))
		}
	}

	clients := make([]entity.ClientRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		clients = append(clients, entity.ClientRecord{
			ClienteID:       cell(row, index[colClienteID]),
			Bairro:          cell(row, index[colBairro]),
			PlanoMBs:        coerceNumeric(cell(row, index[colPlano])),
			TipoPlano:       strings.TrimSpace(cell(row, index[colTipoPlano])),
			ConsumoAtualMBs: coerceNumeric(cell(row, index[colConsumo])),
		})
	}

	return entity.LoadResult{Clients: clients, Source: entity.SourceCSV}
}

func fallback(reason string) entity.LoadResult {
	return entity.LoadResult{Source: entity.SourceSimulated, FallbackReason: reason}
}

// normalizeClients aplica a mesma normalização aos dois caminhos de
// carga: trim do bairro, zero à esquerda no ID, descarte de linhas
// incompletas, flags derivadas e coordenadas.
func normalizeClients(clients []entity.ClientRecord) []entity.ClientRecord {
	normalized := make([]entity.ClientRecord, 0, len(clients))
	for _, c := range clients {
		c.Bairro = strings.TrimSpace(c.Bairro)
		c.ClienteID = padClienteID(c.ClienteID)
		if !c.Valid() {
			continue
		}
		c.ComputeFlags()
		c.AttachCoordinates()
		normalized = append(normalized, c)
	}
	return normalized
}

// cleanColumns remove quebras de linha embutidas e espaços em volta
// dos nomes de coluna.
func cleanColumns(header []string) []string {
	cleaned := make([]string, len(header))
	for i, col := range header {
		col = strings.ReplaceAll(col, "\n", " ")
		cleaned[i] = strings.TrimSpace(col)
	}
	return cleaned
}

// coerceNumeric converte uma célula em float64. Valores não numéricos
// viram NaN e a linha é descartada na normalização, sem erro.
func coerceNumeric(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// padClienteID garante o ID como string numérica de largura 3.
func padClienteID(id string) string {
	id = strings.TrimSpace(id)
	for len(id) < 3 {
		id = "0" + id
	}
	return id
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
