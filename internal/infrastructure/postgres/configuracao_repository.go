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

var _ repository.ConfiguracaoRepository = (*ConfiguracaoRepo)(nil)

// ConfiguracaoRepo implementação de ConfiguracaoRepository sobre PostgreSQL.
// O mapa de valores tipados vive em JSONB.
type ConfiguracaoRepo struct {
	q Querier
}

// NewConfiguracaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewConfiguracaoRepository(q Querier) *ConfiguracaoRepo {
	return &ConfiguracaoRepo{q: q}
}

const configuracaoColumns = `id, setor, nome, configuracoes, updated_by, created_at, updated_at`

// Create persiste uma nova configuração.
func (r *ConfiguracaoRepo) Create(ctx context.Context, c *entity.Configuracao) error {
	valores, err := json.Marshal(c.Configuracoes)
	if err != nil {
		return fmt.Errorf("marshal configuracoes: %w", err)
	}
	query := `
		INSERT INTO configuracoes (` + configuracaoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(ctx, query,
		c.ID, string(c.Setor), c.Nome, valores, c.UpdatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert configuracao: %w", err)
	}
	return nil
}

// GetByID obtém uma configuração por ID.
func (r *ConfiguracaoRepo) GetByID(ctx context.Context, id string) (*entity.Configuracao, error) {
	query := `SELECT ` + configuracaoColumns + ` FROM configuracoes WHERE id = $1`
	c, err := scanConfiguracao(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get configuracao: %w", err)
	}
	return c, nil
}

// List lista configurações filtradas e paginadas.
func (r *ConfiguracaoRepo) List(ctx context.Context, f repository.ConfiguracaoFilter) ([]*entity.Configuracao, error) {
	where, args := configuracaoConditions(f)
	args = append(args, f.Limit, f.Skip)
	query := fmt.Sprintf(`SELECT `+configuracaoColumns+` FROM configuracoes%s ORDER BY setor, nome LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list configuracoes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Configuracao
	for rows.Next() {
		c, err := scanConfiguracao(rows)
		if err != nil {
			return nil, fmt.Errorf("scan configuracao: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count conta as configurações que a listagem devolveria, sem paginação.
func (r *ConfiguracaoRepo) Count(ctx context.Context, f repository.ConfiguracaoFilter) (int64, error) {
	where, args := configuracaoConditions(f)
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM configuracoes`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count configuracoes: %w", err)
	}
	return total, nil
}

// Update atualiza uma configuração, mapa de valores incluído.
func (r *ConfiguracaoRepo) Update(ctx context.Context, c *entity.Configuracao) error {
	valores, err := json.Marshal(c.Configuracoes)
	if err != nil {
		return fmt.Errorf("marshal configuracoes: %w", err)
	}
	query := `
		UPDATE configuracoes
		SET setor = $2, nome = $3, configuracoes = $4, updated_by = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, string(c.Setor), c.Nome, valores, c.UpdatedBy, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update configuracao: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func configuracaoConditions(f repository.ConfiguracaoFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Setores != nil {
		args = append(args, f.Setores)
		conds = append(conds, fmt.Sprintf("setor = ANY($%d)", len(args)))
	}
	if f.Setor != "" {
		args = append(args, f.Setor)
		conds = append(conds, fmt.Sprintf("setor = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, foldSearch(f.Search))
		conds = append(conds, fmt.Sprintf("unaccent(lower(nome)) LIKE $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanConfiguracao(row pgx.Row) (*entity.Configuracao, error) {
	var c entity.Configuracao
	var setor string
	var valores []byte
	err := row.Scan(&c.ID, &setor, &c.Nome, &valores, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(valores, &c.Configuracoes); err != nil {
		return nil, fmt.Errorf("unmarshal configuracoes: %w", err)
	}
	c.Setor = entity.Setor(setor)
	return &c, nil
}
