package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/application/usecase"
)

// ChatHandler trata as salas de chat internas.
type ChatHandler struct {
	uc *usecase.ChatUseCase
}

// NewChatHandler constrói o handler.
func NewChatHandler(uc *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Create cria uma sala; quem cria vira admin e participante.
// POST /api/chats
func (h *ChatHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChatRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista as salas do usuário, sem as mensagens.
// GET /api/chats
func (h *ChatHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), CurrentUser(c), c.QueryInt("skip", 0), c.QueryInt("limit", 0))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID obtém uma sala; só participantes (ou admin) enxergam.
// GET /api/chats/:id
func (h *ChatHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListMensagens pagina as mensagens de uma sala, mais recentes primeiro.
// GET /api/chats/:id/mensagens
func (h *ChatHandler) ListMensagens(c *fiber.Ctx) error {
	out, err := h.uc.ListMensagens(c.Context(), CurrentUser(c), c.Params("id"),
		c.QueryInt("skip", 0), c.QueryInt("limit", 0))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AddMensagem envia uma mensagem para a sala.
// POST /api/chats/:id/mensagens
func (h *ChatHandler) AddMensagem(c *fiber.Ctx) error {
	var in dto.MensagemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddMensagem(c.Context(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
