package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/application/usecase"
)

// AtendimentoHandler trata tickets de atendimento (setor atendimento).
type AtendimentoHandler struct {
	uc *usecase.AtendimentoUseCase
}

// NewAtendimentoHandler constrói o handler.
func NewAtendimentoHandler(uc *usecase.AtendimentoUseCase) *AtendimentoHandler {
	return &AtendimentoHandler{uc: uc}
}

// Create abre um ticket com SLA no fim do dia da abertura.
// POST /api/atendimento/tickets
func (h *AtendimentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista tickets.
// GET /api/atendimento/tickets
func (h *AtendimentoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), usecase.ListTicketsQuery{
		Status:     c.Query("status"),
		Prioridade: c.Query("prioridade"),
		Search:     c.Query("search"),
		Skip:       c.QueryInt("skip", 0),
		Limit:      c.QueryInt("limit", 0),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID obtém um ticket por ID, conversa incluída.
// GET /api/atendimento/tickets/:id
func (h *AtendimentoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update atualização parcial de um ticket (a conversa não passa por aqui).
// PUT /api/atendimento/tickets/:id
func (h *AtendimentoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AddConversa anexa uma entrada à conversa do ticket.
// POST /api/atendimento/tickets/:id/conversas
func (h *AtendimentoHandler) AddConversa(c *fiber.Ctx) error {
	var in dto.ConversaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddConversa(c.Context(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
