package repository

import (
	"context"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// ConfiguracaoFilter parâmetros de listagem de configurações.
// Setores é a cláusula de escopo do usuário: nil significa sem
// restrição (admin), lista vazia significa nenhum acesso. O adaptador
// aplica o escopo na consulta, nunca filtrando depois.
type ConfiguracaoFilter struct {
	Setores []string
	Setor   string
	Search  string
	Skip    int
	Limit   int
}

// ConfiguracaoRepository define o porto para configurações por setor.
type ConfiguracaoRepository interface {
	Create(ctx context.Context, c *entity.Configuracao) error
	GetByID(ctx context.Context, id string) (*entity.Configuracao, error)
	List(ctx context.Context, f ConfiguracaoFilter) ([]*entity.Configuracao, error)
	Count(ctx context.Context, f ConfiguracaoFilter) (int64, error)
	Update(ctx context.Context, c *entity.Configuracao) error
}
