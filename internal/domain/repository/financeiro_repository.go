package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// ContaFilter parâmetros de listagem de contas a receber.
// Cidades é a cláusula de escopo do chamador (nil = sem restrição).
type ContaFilter struct {
	Cidades  []string
	Cidade   string
	Situacao string
	Search   string
	Skip     int
	Limit    int
}

// DashboardFinanceiro são os agregados do painel financeiro, já
// restritos ao escopo de cidades do chamador.
type DashboardFinanceiro struct {
	TotalAberto   decimal.Decimal
	TotalAtrasado decimal.Decimal
	TotalRecebido decimal.Decimal
}

// ContaReceberRepository define o porto de persistência para ContaReceber.
// Update grava a linha inteira (inclusive o histórico JSONB) em um único
// UPDATE, garantindo que a baixa seja uma escrita atômica. Não há Delete:
// o rastro de auditoria é preservado.
type ContaReceberRepository interface {
	Create(ctx context.Context, conta *entity.ContaReceber) error
	GetByID(ctx context.Context, id string) (*entity.ContaReceber, error)
	List(ctx context.Context, f ContaFilter) ([]*entity.ContaReceber, error)
	Count(ctx context.Context, f ContaFilter) (int64, error)
	Update(ctx context.Context, conta *entity.ContaReceber) error
	Dashboard(ctx context.Context, cidades []string) (*DashboardFinanceiro, error)
}

// FinancialClientFilter parâmetros de listagem de clientes financeiros.
type FinancialClientFilter struct {
	StatusPagamento string
	TipoHonorario   string
	Search          string
	Skip            int
	Limit           int
}

// FinancialClientRepository define o porto para o perfil de cobrança.
type FinancialClientRepository interface {
	Create(ctx context.Context, fc *entity.FinancialClient) error
	GetByEmpresaID(ctx context.Context, empresaID string) (*entity.FinancialClient, error)
	List(ctx context.Context, f FinancialClientFilter) ([]*entity.FinancialClient, error)
	Count(ctx context.Context, f FinancialClientFilter) (int64, error)
}
