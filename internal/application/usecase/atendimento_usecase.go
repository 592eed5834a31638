package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

// AtendimentoUseCase casos de uso de tickets de atendimento.
type AtendimentoUseCase struct {
	tickets repository.TicketRepository
	log     *logger.Logger
}

// NewAtendimentoUseCase cria o caso de uso de atendimento.
func NewAtendimentoUseCase(tickets repository.TicketRepository, log *logger.Logger) *AtendimentoUseCase {
	return &AtendimentoUseCase{tickets: tickets, log: log}
}

// Create abre um chamado; nasce aberto com SLA no fim do dia (UTC).
func (uc *AtendimentoUseCase) Create(ctx context.Context, actor *entity.User, req dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	responsavel := req.Responsavel
	if responsavel == "" {
		responsavel = actor.Name
	}

	now := time.Now().UTC()
	t := &entity.Ticket{
		ID:           uuid.NewString(),
		EmpresaID:    req.EmpresaID,
		Empresa:      req.Empresa,
		Titulo:       req.Titulo,
		Descricao:    req.Descricao,
		Prioridade:   entity.Prioridade(req.Prioridade),
		Status:       entity.TicketAberto,
		Responsavel:  responsavel,
		Canal:        entity.Canal(req.Canal),
		DataAbertura: now,
		SLA:          entity.SLADoDia(now),
		Arquivos:     req.Arquivos,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.tickets.Create(ctx, t); err != nil {
		return nil, err
	}

	uc.log.Info().Str("ticket_id", t.ID).Str("canal", req.Canal).Msg("ticket aberto")
	return toTicketResponse(t), nil
}

// Get devolve um chamado por id.
func (uc *AtendimentoUseCase) Get(ctx context.Context, id string) (*dto.TicketResponse, error) {
	t, err := uc.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

// ListTicketsQuery filtros de listagem vindos da rota.
type ListTicketsQuery struct {
	Status     string
	Prioridade string
	Search     string
	Skip       int
	Limit      int
}

// List lista chamados.
func (uc *AtendimentoUseCase) List(ctx context.Context, q ListTicketsQuery) (*dto.TicketListResponse, error) {
	skip, limit := clampPage(q.Skip, q.Limit, defaultLimit, maxRegistros)
	f := repository.TicketFilter{
		Status:     q.Status,
		Prioridade: q.Prioridade,
		Search:     q.Search,
		Skip:       skip,
		Limit:      limit,
	}

	tickets, err := uc.tickets.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.tickets.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TicketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = toTicketResponse(t)
	}
	return &dto.TicketListResponse{Tickets: out, Total: total, Skip: skip, Limit: limit}, nil
}

// Update atualização parcial do chamado.
func (uc *AtendimentoUseCase) Update(ctx context.Context, id string, req dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	t, err := uc.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Titulo != nil {
		t.Titulo = *req.Titulo
	}
	if req.Descricao != nil {
		t.Descricao = *req.Descricao
	}
	if req.Prioridade != nil {
		t.Prioridade = entity.Prioridade(*req.Prioridade)
	}
	if req.Status != nil {
		t.Status = entity.StatusTicket(*req.Status)
	}
	if req.Responsavel != nil {
		t.Responsavel = *req.Responsavel
	}
	if req.Arquivos != nil {
		t.Arquivos = *req.Arquivos
	}
	t.UpdatedAt = time.Now().UTC()

	if err := uc.tickets.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

// AddConversa anexa uma entrada à conversa do chamado em uma única escrita.
func (uc *AtendimentoUseCase) AddConversa(ctx context.Context, actor *entity.User, id string, req dto.ConversaRequest) (*dto.TicketResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if _, err := uc.tickets.GetByID(ctx, id); err != nil {
		return nil, err
	}

	agora := time.Now().UTC()
	c := entity.Conversa{
		Data:     agora,
		Usuario:  actor.Name,
		Mensagem: req.Mensagem,
	}
	if err := uc.tickets.AppendConversa(ctx, id, c, agora); err != nil {
		return nil, err
	}

	t, err := uc.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	conversas := t.Conversas
	if conversas == nil {
		conversas = []entity.Conversa{}
	}
	arquivos := t.Arquivos
	if arquivos == nil {
		arquivos = []string{}
	}
	return &dto.TicketResponse{
		ID:           t.ID,
		EmpresaID:    t.EmpresaID,
		Empresa:      t.Empresa,
		Titulo:       t.Titulo,
		Descricao:    t.Descricao,
		Prioridade:   string(t.Prioridade),
		Status:       string(t.Status),
		Responsavel:  t.Responsavel,
		Canal:        string(t.Canal),
		DataAbertura: t.DataAbertura,
		SLA:          t.SLA,
		Conversas:    conversas,
		Arquivos:     arquivos,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
