package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/application/usecase"
)

// ConfiguracaoHandler trata as configurações por setor.
type ConfiguracaoHandler struct {
	uc *usecase.ConfiguracaoUseCase
}

// NewConfiguracaoHandler constrói o handler.
func NewConfiguracaoHandler(uc *usecase.ConfiguracaoUseCase) *ConfiguracaoHandler {
	return &ConfiguracaoHandler{uc: uc}
}

// Create cria uma configuração; o setor precisa estar liberado.
// POST /api/configuracoes
func (h *ConfiguracaoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConfiguracaoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista configurações dos setores liberados.
// GET /api/configuracoes
func (h *ConfiguracaoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), CurrentUser(c), usecase.ListConfiguracoesQuery{
		Setor:  c.Query("setor"),
		Search: c.Query("search"),
		Skip:   c.QueryInt("skip", 0),
		Limit:  c.QueryInt("limit", 0),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID obtém uma configuração por ID.
// GET /api/configuracoes/:id
func (h *ConfiguracaoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update atualiza uma configuração; chaves novas entram por merge.
// PUT /api/configuracoes/:id
func (h *ConfiguracaoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateConfiguracaoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
