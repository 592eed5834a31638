package repository

import (
	"context"
	"time"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// ChatRepository define o porto para salas de chat.
// AppendMensagem anexa a mensagem e carimba updated_at no mesmo UPDATE.
// Não há Delete: salas são desativadas via Ativo.
type ChatRepository interface {
	Create(ctx context.Context, c *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	ListByParticipant(ctx context.Context, userID string, skip, limit int) ([]*entity.Chat, error)
	CountByParticipant(ctx context.Context, userID string) (int64, error)
	AppendMensagem(ctx context.Context, id string, m entity.Mensagem, agora time.Time) error
}
