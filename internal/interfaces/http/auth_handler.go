package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/macedocontabil/macedo-si-api/internal/application/auth"
	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
)

// AuthHandler trata autenticação e gestão de usuários.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica por email e senha e emite o token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Register cria um usuário; só admin.
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Me devolve o usuário do token.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(h.uc.Me(CurrentUser(c)))
}

// ListUsers lista os usuários; só admin.
// GET /api/auth/users
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.Context(), CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetUser obtém um usuário por ID; só admin.
// GET /api/auth/users/:id
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	out, err := h.uc.GetUser(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateUser atualização parcial de um usuário; só admin. Não há remoção
// de usuários, desativar é is_active=false.
// PUT /api/auth/users/:id
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateUser(c.Context(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
