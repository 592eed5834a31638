package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/financeiro"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
)

var _ repository.ContaReceberRepository = (*ContaReceberRepo)(nil)

// ContaReceberRepo implementação de ContaReceberRepository sobre PostgreSQL.
// O histórico vive em uma coluna JSONB gravada junto com a linha, então a
// baixa (situação + valores + entrada de histórico) é um único UPDATE.
type ContaReceberRepo struct {
	q Querier
}

// NewContaReceberRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewContaReceberRepository(q Querier) *ContaReceberRepo {
	return &ContaReceberRepo{q: q}
}

const contaColumns = `id, empresa_id, empresa, situacao, descricao, documento, forma_pagamento, conta,
	centro_custo, plano_custo, data_emissao, data_vencimento, valor_original, observacao,
	cidade_atendimento, data_recebimento, desconto_aplicado, acrescimo_aplicado, valor_quitado,
	troco, total_bruto, total_liquido, usuario_responsavel, historico, created_at, updated_at`

// Create persiste uma conta recém-emitida.
func (r *ContaReceberRepo) Create(ctx context.Context, conta *entity.ContaReceber) error {
	historico, err := marshalHistorico(conta.Historico)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO contas_receber (` + contaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		        $19, $20, $21, $22, $23, $24, $25, $26)`
	_, err = r.q.Exec(ctx, query,
		conta.ID, conta.EmpresaID, conta.Empresa, string(conta.Situacao), conta.Descricao,
		conta.Documento, conta.FormaPagamento, conta.Conta, conta.CentroCusto, conta.PlanoCusto,
		conta.DataEmissao, conta.DataVencimento, conta.ValorOriginal, conta.Observacao,
		conta.CidadeAtendimento, conta.DataRecebimento, conta.DescontoAplicado,
		conta.AcrescimoAplicado, conta.ValorQuitado, conta.Troco, conta.TotalBruto,
		conta.TotalLiquido, conta.UsuarioResponsavel, historico, conta.CreatedAt, conta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert conta: %w", err)
	}
	return nil
}

// GetByID obtém uma conta por ID.
func (r *ContaReceberRepo) GetByID(ctx context.Context, id string) (*entity.ContaReceber, error) {
	query := `SELECT ` + contaColumns + ` FROM contas_receber WHERE id = $1`
	c, err := scanConta(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conta: %w", err)
	}
	return c, nil
}

// List lista contas dentro do escopo, mais recentes primeiro.
func (r *ContaReceberRepo) List(ctx context.Context, f repository.ContaFilter) ([]*entity.ContaReceber, error) {
	where, args := contaConditions(f)
	args = append(args, f.Limit, f.Skip)
	query := fmt.Sprintf(`SELECT `+contaColumns+` FROM contas_receber%s ORDER BY data_vencimento DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contas: %w", err)
	}
	defer rows.Close()

	var list []*entity.ContaReceber
	for rows.Next() {
		c, err := scanConta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conta: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count conta as contas que a listagem devolveria, sem paginação.
func (r *ContaReceberRepo) Count(ctx context.Context, f repository.ContaFilter) (int64, error) {
	where, args := contaConditions(f)
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM contas_receber`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count contas: %w", err)
	}
	return total, nil
}

// Update grava a linha inteira, histórico incluído, em um único UPDATE.
func (r *ContaReceberRepo) Update(ctx context.Context, conta *entity.ContaReceber) error {
	historico, err := marshalHistorico(conta.Historico)
	if err != nil {
		return err
	}
	query := `
		UPDATE contas_receber
		SET empresa_id = $2, empresa = $3, situacao = $4, descricao = $5, documento = $6,
		    forma_pagamento = $7, conta = $8, centro_custo = $9, plano_custo = $10,
		    data_emissao = $11, data_vencimento = $12, valor_original = $13, observacao = $14,
		    cidade_atendimento = $15, data_recebimento = $16, desconto_aplicado = $17,
		    acrescimo_aplicado = $18, valor_quitado = $19, troco = $20, total_bruto = $21,
		    total_liquido = $22, usuario_responsavel = $23, historico = $24, updated_at = $25
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		conta.ID, conta.EmpresaID, conta.Empresa, string(conta.Situacao), conta.Descricao,
		conta.Documento, conta.FormaPagamento, conta.Conta, conta.CentroCusto, conta.PlanoCusto,
		conta.DataEmissao, conta.DataVencimento, conta.ValorOriginal, conta.Observacao,
		conta.CidadeAtendimento, conta.DataRecebimento, conta.DescontoAplicado,
		conta.AcrescimoAplicado, conta.ValorQuitado, conta.Troco, conta.TotalBruto,
		conta.TotalLiquido, conta.UsuarioResponsavel, historico, conta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update conta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Dashboard agrega os totais por situação, restritos ao escopo de cidades.
// O saldo em aberto soma toda situação cobrável (em aberto, atrasado e
// renegociado), não só em_aberto.
func (r *ContaReceberRepo) Dashboard(ctx context.Context, cidades []string) (*repository.DashboardFinanceiro, error) {
	query := `
		SELECT
			COALESCE(SUM(total_liquido) FILTER (WHERE situacao = ANY($1)), 0),
			COALESCE(SUM(total_liquido) FILTER (WHERE situacao = 'atrasado'), 0),
			COALESCE(SUM(valor_quitado) FILTER (WHERE situacao = 'pago'), 0)
		FROM contas_receber`
	args := []any{financeiro.SituacoesEmAberto()}
	if cidades != nil {
		query += ` WHERE cidade_atendimento = ANY($2)`
		args = append(args, cidades)
	}

	var d repository.DashboardFinanceiro
	err := r.q.QueryRow(ctx, query, args...).Scan(&d.TotalAberto, &d.TotalAtrasado, &d.TotalRecebido)
	if err != nil {
		return nil, fmt.Errorf("dashboard financeiro: %w", err)
	}
	return &d, nil
}

func contaConditions(f repository.ContaFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Cidades != nil {
		args = append(args, f.Cidades)
		conds = append(conds, fmt.Sprintf("cidade_atendimento = ANY($%d)", len(args)))
	}
	if f.Cidade != "" {
		args = append(args, f.Cidade)
		conds = append(conds, fmt.Sprintf("cidade_atendimento = $%d", len(args)))
	}
	if f.Situacao != "" {
		args = append(args, f.Situacao)
		conds = append(conds, fmt.Sprintf("situacao = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, foldSearch(f.Search))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(unaccent(lower(empresa)) LIKE $%d OR unaccent(lower(descricao)) LIKE $%d OR documento LIKE $%d)",
			n, n, n))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func marshalHistorico(h []entity.HistoricoAcao) ([]byte, error) {
	if h == nil {
		h = []entity.HistoricoAcao{}
	}
	out, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("marshal historico: %w", err)
	}
	return out, nil
}

func scanConta(row pgx.Row) (*entity.ContaReceber, error) {
	var c entity.ContaReceber
	var situacao string
	var historico []byte
	err := row.Scan(
		&c.ID, &c.EmpresaID, &c.Empresa, &situacao, &c.Descricao, &c.Documento, &c.FormaPagamento,
		&c.Conta, &c.CentroCusto, &c.PlanoCusto, &c.DataEmissao, &c.DataVencimento,
		&c.ValorOriginal, &c.Observacao, &c.CidadeAtendimento, &c.DataRecebimento,
		&c.DescontoAplicado, &c.AcrescimoAplicado, &c.ValorQuitado, &c.Troco, &c.TotalBruto,
		&c.TotalLiquido, &c.UsuarioResponsavel, &historico, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(historico, &c.Historico); err != nil {
		return nil, fmt.Errorf("unmarshal historico: %w", err)
	}
	c.Situacao = entity.Situacao(situacao)
	return &c, nil
}
