package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
)

var _ repository.ChatRepository = (*ChatRepo)(nil)

// ChatRepo implementação de ChatRepository sobre PostgreSQL.
// Mensagens vivem em JSONB; anexar é um único UPDATE com concatenação.
type ChatRepo struct {
	q Querier
}

// NewChatRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewChatRepository(q Querier) *ChatRepo {
	return &ChatRepo{q: q}
}

const chatColumns = `id, nome, descricao, tipo, participantes, admin_id, mensagens, ativo, created_at, updated_at`

// Create persiste uma nova sala.
func (r *ChatRepo) Create(ctx context.Context, c *entity.Chat) error {
	mensagens, err := marshalMensagens(c.Mensagens)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO chats (` + chatColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(ctx, query,
		c.ID, c.Nome, c.Descricao, string(c.Tipo), c.Participantes, c.AdminID,
		mensagens, c.Ativo, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert chat: %w", err)
	}
	return nil
}

// GetByID obtém uma sala por ID, mensagens incluídas.
func (r *ChatRepo) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	query := `SELECT ` + chatColumns + ` FROM chats WHERE id = $1`
	c, err := scanChat(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get chat: %w", err)
	}
	return c, nil
}

// ListByParticipant lista as salas das quais o usuário participa,
// atividade mais recente primeiro.
func (r *ChatRepo) ListByParticipant(ctx context.Context, userID string, skip, limit int) ([]*entity.Chat, error) {
	query := `
		SELECT ` + chatColumns + `
		FROM chats
		WHERE $1 = ANY(participantes)
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	var list []*entity.Chat
	for rows.Next() {
		c, err := scanChat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountByParticipant conta as salas das quais o usuário participa.
func (r *ChatRepo) CountByParticipant(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM chats WHERE $1 = ANY(participantes)`, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count chats: %w", err)
	}
	return total, nil
}

// AppendMensagem anexa a mensagem e carimba updated_at no mesmo UPDATE.
func (r *ChatRepo) AppendMensagem(ctx context.Context, id string, m entity.Mensagem, agora time.Time) error {
	entrada, err := json.Marshal([]entity.Mensagem{m})
	if err != nil {
		return fmt.Errorf("marshal mensagem: %w", err)
	}
	query := `UPDATE chats SET mensagens = mensagens || $2::jsonb, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, entrada, agora)
	if err != nil {
		return fmt.Errorf("append mensagem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func marshalMensagens(m []entity.Mensagem) ([]byte, error) {
	if m == nil {
		m = []entity.Mensagem{}
	}
	out, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal mensagens: %w", err)
	}
	return out, nil
}

func scanChat(row pgx.Row) (*entity.Chat, error) {
	var c entity.Chat
	var tipo string
	var mensagens []byte
	err := row.Scan(
		&c.ID, &c.Nome, &c.Descricao, &tipo, &c.Participantes, &c.AdminID,
		&mensagens, &c.Ativo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(mensagens, &c.Mensagens); err != nil {
		return nil, fmt.Errorf("unmarshal mensagens: %w", err)
	}
	c.Tipo = entity.TipoChat(tipo)
	return &c, nil
}
