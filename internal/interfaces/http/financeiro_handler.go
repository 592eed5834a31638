package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/application/usecase"
)

// FinanceiroHandler trata contas a receber, perfis de cobrança e o
// painel financeiro (setor financeiro).
type FinanceiroHandler struct {
	uc *usecase.FinanceiroUseCase
}

// NewFinanceiroHandler constrói o handler.
func NewFinanceiroHandler(uc *usecase.FinanceiroUseCase) *FinanceiroHandler {
	return &FinanceiroHandler{uc: uc}
}

// CreateConta emite uma conta a receber.
// POST /api/financial/contas-receber
func (h *FinanceiroHandler) CreateConta(c *fiber.Ctx) error {
	var in dto.CreateContaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateConta(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListContas lista contas recortadas pelo escopo de cidades.
// GET /api/financial/contas-receber
func (h *FinanceiroHandler) ListContas(c *fiber.Ctx) error {
	out, err := h.uc.ListContas(c.Context(), CurrentUser(c), usecase.ListContasQuery{
		Cidade:   c.Query("cidade"),
		Situacao: c.Query("situacao"),
		Search:   c.Query("search"),
		Skip:     c.QueryInt("skip", 0),
		Limit:    c.QueryInt("limit", 0),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetConta obtém uma conta por ID, histórico incluído.
// GET /api/financial/contas-receber/:id
func (h *FinanceiroHandler) GetConta(c *fiber.Ctx) error {
	out, err := h.uc.GetConta(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateConta atualização parcial de uma conta.
// PUT /api/financial/contas-receber/:id
func (h *FinanceiroHandler) UpdateConta(c *fiber.Ctx) error {
	var in dto.UpdateContaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateConta(c.Context(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// BaixarConta registra a baixa (quitação) de uma conta.
// PUT /api/financial/contas-receber/:id/baixa
func (h *FinanceiroHandler) BaixarConta(c *fiber.Ctx) error {
	var in dto.BaixaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.BaixarConta(c.Context(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AlterarSituacao muda a situação de uma conta respeitando as
// transições permitidas.
// PATCH /api/financial/contas-receber/:id/situacao
func (h *FinanceiroHandler) AlterarSituacao(c *fiber.Ctx) error {
	var in dto.SituacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AlterarSituacao(c.Context(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Recibo devolve o PDF do recibo de quitação de uma conta paga.
// GET /api/financial/contas-receber/:id/recibo
func (h *FinanceiroHandler) Recibo(c *fiber.Ctx) error {
	pdf, err := h.uc.Recibo(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo-`+c.Params("id")+`.pdf"`)
	return c.Send(pdf)
}

// Dashboard devolve os agregados do painel financeiro, recortados pelo
// escopo de cidades.
// GET /api/financial/dashboard-stats
func (h *FinanceiroHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// CreateFinancialClient cria o perfil de cobrança de um cliente.
// POST /api/financial/clientes
func (h *FinanceiroHandler) CreateFinancialClient(c *fiber.Ctx) error {
	var in dto.CreateFinancialClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateFinancialClient(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListFinancialClients lista perfis de cobrança.
// GET /api/financial/clientes
func (h *FinanceiroHandler) ListFinancialClients(c *fiber.Ctx) error {
	out, err := h.uc.ListFinancialClients(c.Context(), usecase.ListFinancialClientsQuery{
		StatusPagamento: c.Query("status_pagamento"),
		TipoHonorario:   c.Query("tipo_honorario"),
		Search:          c.Query("search"),
		Skip:            c.QueryInt("skip", 0),
		Limit:           c.QueryInt("limit", 0),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetFinancialClient obtém o perfil de cobrança pela empresa.
// GET /api/financial/clientes/:empresaId
func (h *FinanceiroHandler) GetFinancialClient(c *fiber.Ctx) error {
	out, err := h.uc.GetFinancialClient(c.Context(), c.Params("empresaId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
