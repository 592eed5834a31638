package repository

import (
	"context"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// TrabalhistaFilter parâmetros de listagem de solicitações trabalhistas.
type TrabalhistaFilter struct {
	Tipo   string
	Status string
	Search string
	Skip   int
	Limit  int
}

// TrabalhistaStats contagens para o painel do módulo.
type TrabalhistaStats struct {
	PorStatus map[string]int64
	PorTipo   map[string]int64
}

// TrabalhistaRepository define o porto para solicitações trabalhistas.
type TrabalhistaRepository interface {
	Create(ctx context.Context, s *entity.SolicitacaoTrabalhista) error
	GetByID(ctx context.Context, id string) (*entity.SolicitacaoTrabalhista, error)
	List(ctx context.Context, f TrabalhistaFilter) ([]*entity.SolicitacaoTrabalhista, error)
	Count(ctx context.Context, f TrabalhistaFilter) (int64, error)
	Update(ctx context.Context, s *entity.SolicitacaoTrabalhista) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*TrabalhistaStats, error)
}
