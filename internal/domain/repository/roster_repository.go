package repository

import (
	"context"

	"github.com/negreirosnet/netops-dashboard-go/internal/domain/entity"
)

// RosterRepository defines the interface for loading the client roster.
type RosterRepository interface {
	// Load lê o arquivo de clientes e devolve o roster normalizado.
	// Arquivo ausente, ilegível ou sem as colunas obrigatórias não é
	// erro: o resultado vem do gerador sintético com o motivo do
	// fallback preenchido. syntheticCount dimensiona esse fallback.
	Load(ctx context.Context, path string, syntheticCount int) (entity.LoadResult, error)
}
