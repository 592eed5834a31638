package repository

import (
	"context"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// FiscalFilter parâmetros de listagem de obrigações fiscais.
type FiscalFilter struct {
	Tipo   string
	Status string
	Search string
	Skip   int
	Limit  int
}

// FiscalRepository define o porto para obrigações fiscais.
type FiscalRepository interface {
	Create(ctx context.Context, o *entity.ObrigacaoFiscal) error
	GetByID(ctx context.Context, id string) (*entity.ObrigacaoFiscal, error)
	List(ctx context.Context, f FiscalFilter) ([]*entity.ObrigacaoFiscal, error)
	Count(ctx context.Context, f FiscalFilter) (int64, error)
	Update(ctx context.Context, o *entity.ObrigacaoFiscal) error
	Delete(ctx context.Context, id string) error
}
