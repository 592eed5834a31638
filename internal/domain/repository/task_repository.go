package repository

import (
	"context"
	"time"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// TaskFilter parâmetros de listagem de tarefas.
// OwnerID é a cláusula de escopo de posse: quando não vazio, somente
// tarefas criadas por ou atribuídas a esse usuário entram no resultado
// (sempre em AND com os demais filtros e com a busca).
type TaskFilter struct {
	OwnerID       string
	Status        string
	Categoria     string
	Prioridade    string
	ResponsavelID string
	Search        string
	Skip          int
	Limit         int
}

// TaskStats contagens para o painel de tarefas, já restritas ao escopo
// de posse do chamador.
type TaskStats struct {
	PorStatus     map[string]int64
	PorPrioridade map[string]int64
	PorCategoria  map[string]int64
}

// TaskRepository define o porto para tarefas.
// AppendComentario anexa o comentário e carimba updated_at no mesmo
// UPDATE. Não há Delete: o rastro de comentários é preservado.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	List(ctx context.Context, f TaskFilter) ([]*entity.Task, error)
	Count(ctx context.Context, f TaskFilter) (int64, error)
	Update(ctx context.Context, t *entity.Task) error
	AppendComentario(ctx context.Context, id string, c entity.TaskComment, agora time.Time) error
	Stats(ctx context.Context, ownerID string) (*TaskStats, error)
}
