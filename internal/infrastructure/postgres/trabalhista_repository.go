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
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
)

var _ repository.TrabalhistaRepository = (*TrabalhistaRepo)(nil)

// TrabalhistaRepo implementação de TrabalhistaRepository sobre PostgreSQL.
// Funcionário e detalhes de folha são JSONB opcionais.
type TrabalhistaRepo struct {
	q Querier
}

// NewTrabalhistaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTrabalhistaRepository(q Querier) *TrabalhistaRepo {
	return &TrabalhistaRepo{q: q}
}

const trabalhistaColumns = `id, empresa_id, empresa, tipo, descricao, data_solicitacao, prazo,
	responsavel, status, arquivos, observacoes, funcionario, detalhes, created_at, updated_at`

// Create persiste uma nova solicitação.
func (r *TrabalhistaRepo) Create(ctx context.Context, s *entity.SolicitacaoTrabalhista) error {
	funcionario, detalhes, err := marshalSolicitacaoDocs(s)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO solicitacoes_trabalhistas (` + trabalhistaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.q.Exec(ctx, query,
		s.ID, s.EmpresaID, s.Empresa, string(s.Tipo), s.Descricao, s.DataSolicitacao, s.Prazo,
		s.Responsavel, string(s.Status), s.Arquivos, s.Observacoes, funcionario, detalhes,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert solicitacao: %w", err)
	}
	return nil
}

// GetByID obtém uma solicitação por ID.
func (r *TrabalhistaRepo) GetByID(ctx context.Context, id string) (*entity.SolicitacaoTrabalhista, error) {
	query := `SELECT ` + trabalhistaColumns + ` FROM solicitacoes_trabalhistas WHERE id = $1`
	s, err := scanSolicitacao(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get solicitacao: %w", err)
	}
	return s, nil
}

// List lista solicitações, mais recentes primeiro.
func (r *TrabalhistaRepo) List(ctx context.Context, f repository.TrabalhistaFilter) ([]*entity.SolicitacaoTrabalhista, error) {
	where, args := trabalhistaConditions(f)
	args = append(args, f.Limit, f.Skip)
	query := fmt.Sprintf(`SELECT `+trabalhistaColumns+` FROM solicitacoes_trabalhistas%s ORDER BY data_solicitacao DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list solicitacoes: %w", err)
	}
	defer rows.Close()

	var list []*entity.SolicitacaoTrabalhista
	for rows.Next() {
		s, err := scanSolicitacao(rows)
		if err != nil {
			return nil, fmt.Errorf("scan solicitacao: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Count conta as solicitações que a listagem devolveria, sem paginação.
func (r *TrabalhistaRepo) Count(ctx context.Context, f repository.TrabalhistaFilter) (int64, error) {
	where, args := trabalhistaConditions(f)
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM solicitacoes_trabalhistas`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count solicitacoes: %w", err)
	}
	return total, nil
}

// Update atualiza uma solicitação.
func (r *TrabalhistaRepo) Update(ctx context.Context, s *entity.SolicitacaoTrabalhista) error {
	funcionario, detalhes, err := marshalSolicitacaoDocs(s)
	if err != nil {
		return err
	}
	query := `
		UPDATE solicitacoes_trabalhistas
		SET empresa_id = $2, empresa = $3, tipo = $4, descricao = $5, data_solicitacao = $6,
		    prazo = $7, responsavel = $8, status = $9, arquivos = $10, observacoes = $11,
		    funcionario = $12, detalhes = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		s.ID, s.EmpresaID, s.Empresa, string(s.Tipo), s.Descricao, s.DataSolicitacao, s.Prazo,
		s.Responsavel, string(s.Status), s.Arquivos, s.Observacoes, funcionario, detalhes, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update solicitacao: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma solicitação por ID.
func (r *TrabalhistaRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM solicitacoes_trabalhistas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete solicitacao: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Stats conta as solicitações por status e por tipo.
func (r *TrabalhistaRepo) Stats(ctx context.Context) (*repository.TrabalhistaStats, error) {
	stats := &repository.TrabalhistaStats{
		PorStatus: map[string]int64{},
		PorTipo:   map[string]int64{},
	}

	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM solicitacoes_trabalhistas GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("stats por status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats.PorStatus[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.q.Query(ctx, `SELECT tipo, COUNT(*) FROM solicitacoes_trabalhistas GROUP BY tipo`)
	if err != nil {
		return nil, fmt.Errorf("stats por tipo: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tipo string
		var n int64
		if err := rows.Scan(&tipo, &n); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats.PorTipo[tipo] = n
	}
	return stats, rows.Err()
}

func trabalhistaConditions(f repository.TrabalhistaFilter) (string, []any) {
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
			"(unaccent(lower(empresa)) LIKE $%d OR unaccent(lower(descricao)) LIKE $%d)", n, n))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func marshalSolicitacaoDocs(s *entity.SolicitacaoTrabalhista) (funcionario, detalhes []byte, err error) {
	if s.Funcionario != nil {
		funcionario, err = json.Marshal(s.Funcionario)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal funcionario: %w", err)
		}
	}
	if s.Detalhes != nil {
		detalhes, err = json.Marshal(s.Detalhes)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal detalhes: %w", err)
		}
	}
	return funcionario, detalhes, nil
}

func scanSolicitacao(row pgx.Row) (*entity.SolicitacaoTrabalhista, error) {
	var s entity.SolicitacaoTrabalhista
	var tipo, status string
	var funcionario, detalhes []byte
	err := row.Scan(
		&s.ID, &s.EmpresaID, &s.Empresa, &tipo, &s.Descricao, &s.DataSolicitacao, &s.Prazo,
		&s.Responsavel, &status, &s.Arquivos, &s.Observacoes, &funcionario, &detalhes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(funcionario) > 0 {
		if err := json.Unmarshal(funcionario, &s.Funcionario); err != nil {
			return nil, fmt.Errorf("unmarshal funcionario: %w", err)
		}
	}
	if len(detalhes) > 0 {
		if err := json.Unmarshal(detalhes, &s.Detalhes); err != nil {
			return nil, fmt.Errorf("unmarshal detalhes: %w", err)
		}
	}
	s.Tipo = entity.TipoSolicitacao(tipo)
	s.Status = entity.StatusSolicitacao(status)
	return &s, nil
}
