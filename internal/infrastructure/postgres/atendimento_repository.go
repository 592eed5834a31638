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

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementação de TicketRepository sobre PostgreSQL.
// A conversa vive em JSONB; anexar uma entrada é um único UPDATE com
// concatenação (||), sem reler a linha.
type TicketRepo struct {
	q Querier
}

// NewTicketRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

const ticketColumns = `id, empresa_id, empresa, titulo, descricao, prioridade, status, responsavel,
	canal, data_abertura, sla, conversas, arquivos, created_at, updated_at`

// Create persiste um novo ticket.
func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	conversas, err := marshalConversas(t.Conversas)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.q.Exec(ctx, query,
		t.ID, t.EmpresaID, t.Empresa, t.Titulo, t.Descricao, string(t.Prioridade),
		string(t.Status), t.Responsavel, string(t.Canal), t.DataAbertura, t.SLA,
		conversas, t.Arquivos, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID obtém um ticket por ID.
func (r *TicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`
	t, err := scanTicket(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// List lista tickets, mais recentes primeiro.
func (r *TicketRepo) List(ctx context.Context, f repository.TicketFilter) ([]*entity.Ticket, error) {
	where, args := ticketConditions(f)
	args = append(args, f.Limit, f.Skip)
	query := fmt.Sprintf(`SELECT `+ticketColumns+` FROM tickets%s ORDER BY data_abertura DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var list []*entity.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Count conta os tickets que a listagem devolveria, sem paginação.
func (r *TicketRepo) Count(ctx context.Context, f repository.TicketFilter) (int64, error) {
	where, args := ticketConditions(f)
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return total, nil
}

// Update atualiza um ticket (sem tocar a conversa).
func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	query := `
		UPDATE tickets
		SET empresa_id = $2, empresa = $3, titulo = $4, descricao = $5, prioridade = $6,
		    status = $7, responsavel = $8, canal = $9, arquivos = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		t.ID, t.EmpresaID, t.Empresa, t.Titulo, t.Descricao, string(t.Prioridade),
		string(t.Status), t.Responsavel, string(t.Canal), t.Arquivos, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AppendConversa anexa uma entrada à conversa e carimba updated_at no
// mesmo UPDATE.
func (r *TicketRepo) AppendConversa(ctx context.Context, id string, c entity.Conversa, agora time.Time) error {
	entrada, err := json.Marshal([]entity.Conversa{c})
	if err != nil {
		return fmt.Errorf("marshal conversa: %w", err)
	}
	query := `UPDATE tickets SET conversas = conversas || $2::jsonb, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, entrada, agora)
	if err != nil {
		return fmt.Errorf("append conversa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func ticketConditions(f repository.TicketFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Prioridade != "" {
		args = append(args, f.Prioridade)
		conds = append(conds, fmt.Sprintf("prioridade = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, foldSearch(f.Search))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(unaccent(lower(empresa)) LIKE $%d OR unaccent(lower(titulo)) LIKE $%d)", n, n))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func marshalConversas(c []entity.Conversa) ([]byte, error) {
	if c == nil {
		c = []entity.Conversa{}
	}
	out, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal conversas: %w", err)
	}
	return out, nil
}

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var t entity.Ticket
	var prioridade, status, canal string
	var conversas []byte
	err := row.Scan(
		&t.ID, &t.EmpresaID, &t.Empresa, &t.Titulo, &t.Descricao, &prioridade, &status,
		&t.Responsavel, &canal, &t.DataAbertura, &t.SLA, &conversas, &t.Arquivos,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(conversas, &t.Conversas); err != nil {
		return nil, fmt.Errorf("unmarshal conversas: %w", err)
	}
	t.Prioridade = entity.Prioridade(prioridade)
	t.Status = entity.StatusTicket(status)
	t.Canal = entity.Canal(canal)
	return &t, nil
}
