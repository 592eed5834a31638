package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/application/usecase"
)

// TrabalhistaHandler trata solicitações trabalhistas (setor trabalhista).
type TrabalhistaHandler struct {
	uc *usecase.TrabalhistaUseCase
}

// NewTrabalhistaHandler constrói o handler.
func NewTrabalhistaHandler(uc *usecase.TrabalhistaUseCase) *TrabalhistaHandler {
	return &TrabalhistaHandler{uc: uc}
}

// Create abre uma solicitação.
// POST /api/trabalhista/solicitacoes
func (h *TrabalhistaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSolicitacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista solicitações.
// GET /api/trabalhista/solicitacoes
func (h *TrabalhistaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), usecase.ListSolicitacoesQuery{
		Tipo:   c.Query("tipo"),
		Status: c.Query("status"),
		Search: c.Query("search"),
		Skip:   c.QueryInt("skip", 0),
		Limit:  c.QueryInt("limit", 0),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID obtém uma solicitação por ID.
// GET /api/trabalhista/solicitacoes/:id
func (h *TrabalhistaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update atualização parcial de uma solicitação.
// PUT /api/trabalhista/solicitacoes/:id
func (h *TrabalhistaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSolicitacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete remove uma solicitação.
// DELETE /api/trabalhista/solicitacoes/:id
func (h *TrabalhistaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats contagens por status e por tipo.
// GET /api/trabalhista/stats/dashboard
func (h *TrabalhistaHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
