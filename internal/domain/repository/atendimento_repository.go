package repository

import (
	"context"
	"time"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// TicketFilter parâmetros de listagem de tickets.
type TicketFilter struct {
	Status     string
	Prioridade string
	Search     string
	Skip       int
	Limit      int
}

// TicketRepository define o porto para tickets de atendimento.
// AppendConversa anexa a entrada e carimba updated_at no mesmo UPDATE
// (append aditivo atômico). Não há Delete: o histórico de conversas
// é preservado.
type TicketRepository interface {
	Create(ctx context.Context, t *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	List(ctx context.Context, f TicketFilter) ([]*entity.Ticket, error)
	Count(ctx context.Context, f TicketFilter) (int64, error)
	Update(ctx context.Context, t *entity.Ticket) error
	AppendConversa(ctx context.Context, id string, c entity.Conversa, agora time.Time) error
}
