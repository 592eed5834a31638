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

var _ repository.FiscalRepository = (*FiscalRepo)(nil)

// FiscalRepo implementação de FiscalRepository sobre PostgreSQL.
type FiscalRepo struct {
	q Querier
}

// NewFiscalRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFiscalRepository(q Querier) *FiscalRepo {
	return &FiscalRepo{q: q}
}

const fiscalColumns = `id, empresa_id, empresa, tipo, nome, periodicidade, vencimento, status,
	responsavel, documentos, observacoes, valor, data_entrega, created_at, updated_at`

// Create persiste uma nova obrigação.
func (r *FiscalRepo) Create(ctx context.Context, o *entity.ObrigacaoFiscal) error {
	query := `
		INSERT INTO obrigacoes_fiscais (` + fiscalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.EmpresaID, o.Empresa, string(o.Tipo), o.Nome, string(o.Periodicidade),
		o.Vencimento, string(o.Status), o.Responsavel, o.Documentos, o.Observacoes,
		o.Valor, o.DataEntrega, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert obrigacao: %w", err)
	}
	return nil
}

// GetByID obtém uma obrigação por ID.
func (r *FiscalRepo) GetByID(ctx context.Context, id string) (*entity.ObrigacaoFiscal, error) {
	query := `SELECT ` + fiscalColumns + ` FROM obrigacoes_fiscais WHERE id = $1`
	o, err := scanObrigacao(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get obrigacao: %w", err)
	}
	return o, nil
}

// List lista obrigações, vencimentos mais recentes primeiro.
func (r *FiscalRepo) List(ctx context.Context, f repository.FiscalFilter) ([]*entity.ObrigacaoFiscal, error) {
	where, args := fiscalConditions(f)
	args = append(args, f.Limit, f.Skip)
	query := fmt.Sprintf(`SELECT `+fiscalColumns+` FROM obrigacoes_fiscais%s ORDER BY vencimento DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list obrigacoes: %w", err)
	}
	defer rows.Close()

	var list []*entity.ObrigacaoFiscal
	for rows.Next() {
		o, err := scanObrigacao(rows)
		if err != nil {
			return nil, fmt.Errorf("scan obrigacao: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Count conta as obrigações que a listagem devolveria, sem paginação.
func (r *FiscalRepo) Count(ctx context.Context, f repository.FiscalFilter) (int64, error) {
	where, args := fiscalConditions(f)
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM obrigacoes_fiscais`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count obrigacoes: %w", err)
	}
	return total, nil
}

// Update atualiza uma obrigação.
func (r *FiscalRepo) Update(ctx context.Context, o *entity.ObrigacaoFiscal) error {
	query := `
		UPDATE obrigacoes_fiscais
		SET empresa_id = $2, empresa = $3, tipo = $4, nome = $5, periodicidade = $6,
		    vencimento = $7, status = $8, responsavel = $9, documentos = $10,
		    observacoes = $11, valor = $12, data_entrega = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		o.ID, o.EmpresaID, o.Empresa, string(o.Tipo), o.Nome, string(o.Periodicidade),
		o.Vencimento, string(o.Status), o.Responsavel, o.Documentos, o.Observacoes,
		o.Valor, o.DataEntrega, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update obrigacao: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma obrigação por ID.
func (r *FiscalRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM obrigacoes_fiscais WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete obrigacao: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func fiscalConditions(f repository.FiscalFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Tipo != "" {
		args = append(args, f.Tipo)
		conds = append(conds, fmt.Sprintf("tipo = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, foldSearch(f.Search))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(unaccent(lower(empresa)) LIKE $%d OR unaccent(lower(nome)) LIKE $%d)", n, n))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanObrigacao(row pgx.Row) (*entity.ObrigacaoFiscal, error) {
	var o entity.ObrigacaoFiscal
	var tipo, periodicidade, status string
	err := row.Scan(
		&o.ID, &o.EmpresaID, &o.Empresa, &tipo, &o.Nome, &periodicidade, &o.Vencimento,
		&status, &o.Responsavel, &o.Documentos, &o.Observacoes, &o.Valor, &o.DataEntrega,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Tipo = entity.TipoObrigacao(tipo)
	o.Periodicidade = entity.Periodicidade(periodicidade)
	o.Status = entity.StatusObrigacao(status)
	return &o, nil
}
