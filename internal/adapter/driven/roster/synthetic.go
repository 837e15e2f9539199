package roster

import (
	"fmt"
	"math/rand"

	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
)

// DefaultSyntheticCount é o tamanho padrão do roster sintético.
const DefaultSyntheticCount = 150

// syntheticSeed fixa a semente do gerador para que execuções repetidas
// produzam exatamente o mesmo roster.
const syntheticSeed = 42

var (
	syntheticPlanos = []float64{50, 100, 150, 200, 500}
	syntheticTipos  = []string{"Residencial", "Empresarial", "Premium"}
)

// GenerateSyntheticClients produz n registros de cliente reproduzíveis,
// usados como fallback quando o arquivo de dados não está disponível.
// IDs são a sequência 1..n com zero à esquerda; bairros vêm da tabela
// de coordenadas; consumo é inteiro uniforme em [10, 550).
func GenerateSyntheticClients(n int) []entity.ClientRecord {
	if n <= 0 {
		n = DefaultSyntheticCount
	}

	rng := rand.New(rand.NewSource(syntheticSeed))
	bairros := entity.BairroNames()

	clients := make([]entity.ClientRecord, 0, n)
	for i := 1; i <= n; i++ {
		c := entity.ClientRecord{
			ClienteID:       fmt.Sprintf("%03d", i),
			Bairro:          bairros[rng.Intn(len(bairros))],
			PlanoMBs:        syntheticPlanos[rng.Intn(len(syntheticPlanos))],
			TipoPlano:       syntheticTipos[rng.Intn(len(syntheticTipos))],
			ConsumoAtualMBs: float64(10 + rng.Intn(540)),
		}
		c.ComputeFlags()
		c.AttachCoordinates()
		clients = append(clients, c)
	}

	return clients
}
