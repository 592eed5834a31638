package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain/access"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// RequireSetor devolve um middleware Fiber que exige que o usuário tenha
// acesso ao setor. Deve ser usado DEPOIS do AuthMiddleware (precisa do
// usuário em c.Locals). Admin passa sempre.
func RequireSetor(setor entity.Setor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := CurrentUser(c)
		if u == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "usuário não resolvido no contexto",
			})
		}
		if !access.SectorAllowed(u, setor) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "setor '" + string(setor) + "' não liberado para este usuário",
			})
		}
		return c.Next()
	}
}
