package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

// ChatUseCase casos de uso das salas de chat internas.
type ChatUseCase struct {
	chats repository.ChatRepository
	log   *logger.Logger
}

// NewChatUseCase cria o caso de uso de chat.
func NewChatUseCase(chats repository.ChatRepository, log *logger.Logger) *ChatUseCase {
	return &ChatUseCase{chats: chats, log: log}
}

// Create cria uma sala; quem cria vira admin e entra nos participantes.
func (uc *ChatUseCase) Create(ctx context.Context, actor *entity.User, req dto.CreateChatRequest) (*dto.ChatResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	participantes := req.Participantes
	achou := false
	for _, p := range participantes {
		if p == actor.ID {
			achou = true
			break
		}
	}
	if !achou {
		participantes = append(participantes, actor.ID)
	}

	now := time.Now().UTC()
	c := &entity.Chat{
		ID:            uuid.NewString(),
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		Tipo:          entity.TipoChat(req.Tipo),
		Participantes: participantes,
		AdminID:       actor.ID,
		Ativo:         true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.chats.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.log.Info().Str("chat_id", c.ID).Int("participantes", len(participantes)).Msg("sala criada")
	return toChatResponse(c, true), nil
}

// Get devolve uma sala; só participantes (ou admin do sistema) enxergam.
func (uc *ChatUseCase) Get(ctx context.Context, actor *entity.User, id string) (*dto.ChatResponse, error) {
	c, err := uc.chats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleAdmin && !c.Participa(actor.ID) {
		return nil, domain.ErrForbidden
	}
	return toChatResponse(c, true), nil
}

// List lista as salas das quais o usuário participa, sem as mensagens.
func (uc *ChatUseCase) List(ctx context.Context, actor *entity.User, skip, limit int) (*dto.ChatListResponse, error) {
	skip, limit = clampPage(skip, limit, defaultLimitLeve, maxLeve)

	chats, err := uc.chats.ListByParticipant(ctx, actor.ID, skip, limit)
	if err != nil {
		return nil, err
	}
	total, err := uc.chats.CountByParticipant(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ChatResponse, len(chats))
	for i, c := range chats {
		out[i] = toChatResponse(c, false)
	}
	return &dto.ChatListResponse{Chats: out, Total: total, Skip: skip, Limit: limit}, nil
}

// ListMensagens pagina as mensagens de uma sala, mais recentes primeiro.
// O histórico vive embutido na sala, então a paginação é em memória.
func (uc *ChatUseCase) ListMensagens(ctx context.Context, actor *entity.User, id string, skip, limit int) (*dto.MensagemListResponse, error) {
	skip, limit = clampPage(skip, limit, defaultLimitLeve, maxLeve)

	c, err := uc.chats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleAdmin && !c.Participa(actor.ID) {
		return nil, domain.ErrForbidden
	}

	total := len(c.Mensagens)
	mensagens := []entity.Mensagem{}
	// Da mais recente para a mais antiga.
	for i := total - 1 - skip; i >= 0 && len(mensagens) < limit; i-- {
		mensagens = append(mensagens, c.Mensagens[i])
	}
	return &dto.MensagemListResponse{
		Mensagens: mensagens,
		Total:     int64(total),
		Skip:      skip,
		Limit:     limit,
	}, nil
}

// AddMensagem anexa uma mensagem à sala em uma única escrita; só
// participantes podem enviar, e salas desativadas não recebem mensagens.
func (uc *ChatUseCase) AddMensagem(ctx context.Context, actor *entity.User, id string, req dto.MensagemRequest) (*dto.ChatResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	c, err := uc.chats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Participa(actor.ID) {
		return nil, domain.ErrForbidden
	}
	if !c.Ativo {
		return nil, domain.ErrInvalidInput
	}

	tipo := entity.TipoMensagem(req.Tipo)
	if req.Tipo == "" {
		tipo = entity.MensagemTexto
	}

	agora := time.Now().UTC()
	m := entity.Mensagem{
		ID:          uuid.NewString(),
		UsuarioID:   actor.ID,
		UsuarioNome: actor.Name,
		Mensagem:    req.Mensagem,
		Timestamp:   agora,
		Tipo:        tipo,
		ArquivoURL:  req.ArquivoURL,
	}
	if err := uc.chats.AppendMensagem(ctx, id, m, agora); err != nil {
		return nil, err
	}

	c, err = uc.chats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toChatResponse(c, true), nil
}

func toChatResponse(c *entity.Chat, comMensagens bool) *dto.ChatResponse {
	mensagens := []entity.Mensagem{}
	if comMensagens && c.Mensagens != nil {
		mensagens = c.Mensagens
	}
	participantes := c.Participantes
	if participantes == nil {
		participantes = []string{}
	}
	return &dto.ChatResponse{
		ID:            c.ID,
		Nome:          c.Nome,
		Descricao:     c.Descricao,
		Tipo:          string(c.Tipo),
		Participantes: participantes,
		AdminID:       c.AdminID,
		Mensagens:     mensagens,
		Ativo:         c.Ativo,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
