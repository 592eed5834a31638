package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/application/usecase"
)

// TaskHandler trata tarefas internas; colaborador só enxerga as que
// criou ou das quais é responsável.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler constrói o handler.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create cria uma tarefa; o criador é carimbado a partir do token.
// POST /api/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista tarefas dentro do recorte de posse.
// GET /api/tasks
func (h *TaskHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), CurrentUser(c), usecase.ListTasksQuery{
		Status:        c.Query("status"),
		Categoria:     c.Query("categoria"),
		Prioridade:    c.Query("prioridade"),
		ResponsavelID: c.Query("responsavel_id"),
		Search:        c.Query("search"),
		Skip:          c.QueryInt("skip", 0),
		Limit:         c.QueryInt("limit", 0),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID obtém uma tarefa; só criador, responsável ou admin.
// GET /api/tasks/:id
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update atualização parcial; concluir força progresso 100 e carimba a
// data de conclusão.
// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AddComentario anexa um comentário à tarefa.
// POST /api/tasks/:id/comentarios
func (h *TaskHandler) AddComentario(c *fiber.Ctx) error {
	var in dto.ComentarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddComentario(c.Context(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Stats contagens por status, prioridade e categoria no recorte do
// usuário.
// GET /api/tasks/stats/dashboard
func (h *TaskHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context(), CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
