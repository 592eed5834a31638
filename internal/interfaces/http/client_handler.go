package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/application/usecase"
)

// ClientHandler trata o cadastro de clientes do escritório.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler constrói o handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create cadastra um cliente; a cidade precisa estar no escopo do usuário.
// POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista clientes recortados pelo escopo de cidades.
// GET /api/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), CurrentUser(c), usecase.ListClientsQuery{
		Cidade: c.Query("cidade"),
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

// GetByID obtém um cliente por ID.
// GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByCNPJ obtém um cliente pelo CNPJ exato.
// GET /api/clients/cnpj/:cnpj
func (h *ClientHandler) GetByCNPJ(c *fiber.Ctx) error {
	out, err := h.uc.GetByCNPJ(c.Context(), CurrentUser(c), c.Params("cnpj"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update atualização parcial de um cliente.
// PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete remove um cliente; só admin.
// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), CurrentUser(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
