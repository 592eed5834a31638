package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/application/usecase"
)

// FiscalHandler trata obrigações fiscais (setor fiscal).
type FiscalHandler struct {
	uc *usecase.FiscalUseCase
}

// NewFiscalHandler constrói o handler.
func NewFiscalHandler(uc *usecase.FiscalUseCase) *FiscalHandler {
	return &FiscalHandler{uc: uc}
}

// Create registra uma obrigação.
// POST /api/fiscal/obrigacoes
func (h *FiscalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateObrigacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista obrigações.
// GET /api/fiscal/obrigacoes
func (h *FiscalHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), usecase.ListObrigacoesQuery{
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

// GetByID obtém uma obrigação por ID.
// GET /api/fiscal/obrigacoes/:id
func (h *FiscalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update atualização parcial de uma obrigação; marcar entregue sem data
// de entrega carimba o dia corrente.
// PUT /api/fiscal/obrigacoes/:id
func (h *FiscalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateObrigacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete remove uma obrigação.
// DELETE /api/fiscal/obrigacoes/:id
func (h *FiscalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
