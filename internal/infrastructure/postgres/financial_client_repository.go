package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
)

var _ repository.FinancialClientRepository = (*FinancialClientRepo)(nil)

// FinancialClientRepo implementação de FinancialClientRepository sobre
// PostgreSQL. empresa_id tem constraint única: no máximo um perfil de
// cobrança por empresa.
type FinancialClientRepo struct {
	q Querier
}

// NewFinancialClientRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFinancialClientRepository(q Querier) *FinancialClientRepo {
	return &FinancialClientRepo{q: q}
}

const financialClientColumns = `id, empresa_id, empresa, valor_com_desconto, valor_boleto, dia_vencimento,
	tipo_honorario, empresa_individual_grupo, contas_pagamento, tipo_pagamento,
	forma_pagamento_especial, tipo_empresa, ultimo_pagamento, status_pagamento, created_at, updated_at`

// Create persiste um perfil de cobrança.
func (r *FinancialClientRepo) Create(ctx context.Context, fc *entity.FinancialClient) error {
	query := `
		INSERT INTO financial_clients (` + financialClientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		fc.ID, fc.EmpresaID, fc.Empresa, fc.ValorComDesconto, fc.ValorBoleto, fc.DiaVencimento,
		string(fc.TipoHonorario), string(fc.EmpresaIndividualGrupo), fc.ContasPagamento,
		string(fc.TipoPagamento), fc.FormaPagamentoEspecial, fc.TipoEmpresa, fc.UltimoPagamento,
		string(fc.StatusPagamento), fc.CreatedAt, fc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert financial client: %w", err)
	}
	return nil
}

// GetByEmpresaID obtém o perfil de cobrança de uma empresa.
func (r *FinancialClientRepo) GetByEmpresaID(ctx context.Context, empresaID string) (*entity.FinancialClient, error) {
	query := `SELECT ` + financialClientColumns + ` FROM financial_clients WHERE empresa_id = $1`
	fc, err := scanFinancialClient(r.q.QueryRow(ctx, query, empresaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get financial client: %w", err)
	}
	return fc, nil
}

// List lista perfis de cobrança filtrados e paginados.
func (r *FinancialClientRepo) List(ctx context.Context, f repository.FinancialClientFilter) ([]*entity.FinancialClient, error) {
	where, args := financialClientConditions(f)
	args = append(args, f.Limit, f.Skip)
	query := fmt.Sprintf(`SELECT `+financialClientColumns+` FROM financial_clients%s ORDER BY empresa LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list financial clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.FinancialClient
	for rows.Next() {
		fc, err := scanFinancialClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan financial client: %w", err)
		}
		list = append(list, fc)
	}
	return list, rows.Err()
}

// Count conta os perfis que a listagem devolveria, sem paginação.
func (r *FinancialClientRepo) Count(ctx context.Context, f repository.FinancialClientFilter) (int64, error) {
	where, args := financialClientConditions(f)
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM financial_clients`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count financial clients: %w", err)
	}
	return total, nil
}

func financialClientConditions(f repository.FinancialClientFilter) (string, []any) {
	var conds []string
	var args []any
	if f.StatusPagamento != "" {
		args = append(args, f.StatusPagamento)
		conds = append(conds, fmt.Sprintf("status_pagamento = $%d", len(args)))
	}
	if f.TipoHonorario != "" {
		args = append(args, f.TipoHonorario)
		conds = append(conds, fmt.Sprintf("tipo_honorario = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, foldSearch(f.Search))
		conds = append(conds, fmt.Sprintf("unaccent(lower(empresa)) LIKE $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanFinancialClient(row pgx.Row) (*entity.FinancialClient, error) {
	var fc entity.FinancialClient
	var honorario, individualGrupo, pagamento, status string
	err := row.Scan(
		&fc.ID, &fc.EmpresaID, &fc.Empresa, &fc.ValorComDesconto, &fc.ValorBoleto,
		&fc.DiaVencimento, &honorario, &individualGrupo, &fc.ContasPagamento, &pagamento,
		&fc.FormaPagamentoEspecial, &fc.TipoEmpresa, &fc.UltimoPagamento, &status,
		&fc.CreatedAt, &fc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	fc.TipoHonorario = entity.TipoHonorario(honorario)
	fc.EmpresaIndividualGrupo = entity.EmpresaIndividualGrupo(individualGrupo)
	fc.TipoPagamento = entity.TipoPagamento(pagamento)
	fc.StatusPagamento = entity.StatusPagamento(status)
	return &fc, nil
}
