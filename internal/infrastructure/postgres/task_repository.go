package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementação de TaskRepository sobre PostgreSQL.
// O recorte de posse (criador OU responsável) entra como condição em E
// com os demais filtros e com a busca.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

const taskColumns = `id, titulo, descricao, status, prioridade, categoria, responsavel_id,
	responsavel_nome, criador_id, criador_nome, data_criacao, data_prazo, data_conclusao,
	progresso, comentarios, tags, arquivos, updated_at`

// Create persiste uma nova tarefa.
func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	comentarios, err := marshalComentarios(t.Comentarios)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.q.Exec(ctx, query,
		t.ID, t.Titulo, t.Descricao, string(t.Status), string(t.Prioridade), string(t.Categoria),
		t.ResponsavelID, t.ResponsavelNome, t.CriadorID, t.CriadorNome, t.DataCriacao,
		t.DataPrazo, t.DataConclusao, t.Progresso, comentarios, t.Tags, t.Arquivos, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtém uma tarefa por ID.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	t, err := scanTask(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// List lista tarefas dentro do recorte de posse, mais recentes primeiro.
func (r *TaskRepo) List(ctx context.Context, f repository.TaskFilter) ([]*entity.Task, error) {
	where, args := taskConditions(f)
	args = append(args, f.Limit, f.Skip)
	query := fmt.Sprintf(`SELECT `+taskColumns+` FROM tasks%s ORDER BY data_criacao DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var list []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Count conta as tarefas que a listagem devolveria, sem paginação.
func (r *TaskRepo) Count(ctx context.Context, f repository.TaskFilter) (int64, error) {
	where, args := taskConditions(f)
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return total, nil
}

// Update atualiza uma tarefa (sem tocar os comentários).
func (r *TaskRepo) Update(ctx context.Context, t *entity.Task) error {
	query := `
		UPDATE tasks
		SET titulo = $2, descricao = $3, status = $4, prioridade = $5, categoria = $6,
		    responsavel_id = $7, responsavel_nome = $8, data_prazo = $9, data_conclusao = $10,
		    progresso = $11, tags = $12, arquivos = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		t.ID, t.Titulo, t.Descricao, string(t.Status), string(t.Prioridade), string(t.Categoria),
		t.ResponsavelID, t.ResponsavelNome, t.DataPrazo, t.DataConclusao, t.Progresso,
		t.Tags, t.Arquivos, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AppendComentario anexa o comentário e carimba updated_at no mesmo UPDATE.
func (r *TaskRepo) AppendComentario(ctx context.Context, id string, c entity.TaskComment, agora time.Time) error {
	entrada, err := json.Marshal([]entity.TaskComment{c})
	if err != nil {
		return fmt.Errorf("marshal comentario: %w", err)
	}
	query := `UPDATE tasks SET comentarios = comentarios || $2::jsonb, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, entrada, agora)
	if err != nil {
		return fmt.Errorf("append comentario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Stats conta tarefas por status, prioridade e categoria dentro do
// recorte de posse.
func (r *TaskRepo) Stats(ctx context.Context, ownerID string) (*repository.TaskStats, error) {
	stats := &repository.TaskStats{
		PorStatus:     map[string]int64{},
		PorPrioridade: map[string]int64{},
		PorCategoria:  map[string]int64{},
	}

	where := ""
	var args []any
	if ownerID != "" {
		where = ` WHERE (criador_id = $1 OR responsavel_id = $1)`
		args = append(args, ownerID)
	}

	query := `SELECT status, prioridade, categoria FROM tasks` + where
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stats tasks: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status, prioridade, categoria string
		if err := rows.Scan(&status, &prioridade, &categoria); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats.PorStatus[status]++
		stats.PorPrioridade[prioridade]++
		stats.PorCategoria[categoria]++
	}
	return stats, rows.Err()
}

func taskConditions(f repository.TaskFilter) (string, []any) {
	var conds []string
	var args []any
	if f.OwnerID != "" {
		args = append(args, f.OwnerID)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(criador_id = $%d OR responsavel_id = $%d)", n, n))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Categoria != "" {
		args = append(args, f.Categoria)
		conds = append(conds, fmt.Sprintf("categoria = $%d", len(args)))
	}
	if f.Prioridade != "" {
		args = append(args, f.Prioridade)
		conds = append(conds, fmt.Sprintf("prioridade = $%d", len(args)))
	}
	if f.ResponsavelID != "" {
		args = append(args, f.ResponsavelID)
		conds = append(conds, fmt.Sprintf("responsavel_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, foldSearch(f.Search))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(unaccent(lower(titulo)) LIKE $%d OR unaccent(lower(descricao)) LIKE $%d)", n, n))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func marshalComentarios(c []entity.TaskComment) ([]byte, error) {
	if c == nil {
		c = []entity.TaskComment{}
	}
	out, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal comentarios: %w", err)
	}
	return out, nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	var status, prioridade, categoria string
	var comentarios []byte
	err := row.Scan(
		&t.ID, &t.Titulo, &t.Descricao, &status, &prioridade, &categoria, &t.ResponsavelID,
		&t.ResponsavelNome, &t.CriadorID, &t.CriadorNome, &t.DataCriacao, &t.DataPrazo,
		&t.DataConclusao, &t.Progresso, &comentarios, &t.Tags, &t.Arquivos, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(comentarios, &t.Comentarios); err != nil {
		return nil, fmt.Errorf("unmarshal comentarios: %w", err)
	}
	t.Status = entity.StatusTask(status)
	t.Prioridade = entity.Prioridade(prioridade)
	t.Categoria = entity.Setor(categoria)
	return &t, nil
}
