package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/access"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

// TaskUseCase casos de uso de tarefas internas.
// Visibilidade por posse: criador, responsável ou admin.
type TaskUseCase struct {
	tasks repository.TaskRepository
	users repository.UserRepository
	log   *logger.Logger
}

// NewTaskUseCase cria o caso de uso de tarefas.
func NewTaskUseCase(tasks repository.TaskRepository, users repository.UserRepository, log *logger.Logger) *TaskUseCase {
	return &TaskUseCase{tasks: tasks, users: users, log: log}
}

// Create cria uma tarefa; o nome do responsável é resolvido do cadastro.
func (uc *TaskUseCase) Create(ctx context.Context, actor *entity.User, req dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	responsavel, err := uc.users.GetByID(ctx, req.ResponsavelID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &entity.Task{
		ID:              uuid.NewString(),
		Titulo:          req.Titulo,
		Descricao:       req.Descricao,
		Status:          entity.TaskPendente,
		Prioridade:      entity.Prioridade(req.Prioridade),
		Categoria:       entity.Setor(req.Categoria),
		ResponsavelID:   responsavel.ID,
		ResponsavelNome: responsavel.Name,
		CriadorID:       actor.ID,
		CriadorNome:     actor.Name,
		DataCriacao:     now,
		Tags:            req.Tags,
		Arquivos:        req.Arquivos,
		UpdatedAt:       now,
	}
	if req.DataPrazo != "" {
		prazo, err := dto.ParseDate("data_prazo", req.DataPrazo)
		if err != nil {
			return nil, err
		}
		t.DataPrazo = &prazo
	}

	if err := uc.tasks.Create(ctx, t); err != nil {
		return nil, err
	}

	uc.log.Info().Str("task_id", t.ID).Str("responsavel_id", t.ResponsavelID).Msg("tarefa criada")
	return toTaskResponse(t), nil
}

// Get devolve uma tarefa; só criador, responsável ou admin.
func (uc *TaskUseCase) Get(ctx context.Context, actor *entity.User, id string) (*dto.TaskResponse, error) {
	t, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.OwnerAllowed(actor, t.CriadorID, t.ResponsavelID) {
		return nil, domain.ErrForbidden
	}
	return toTaskResponse(t), nil
}

// ListTasksQuery filtros de listagem vindos da rota.
type ListTasksQuery struct {
	Status        string
	Categoria     string
	Prioridade    string
	ResponsavelID string
	Search        string
	Skip          int
	Limit         int
}

// List lista tarefas; colaborador só enxerga as que criou ou das quais
// é responsável, e a busca é combinada em E com esse recorte.
func (uc *TaskUseCase) List(ctx context.Context, actor *entity.User, q ListTasksQuery) (*dto.TaskListResponse, error) {
	skip, limit := clampPage(q.Skip, q.Limit, defaultLimitLeve, maxLeve)

	ownerID := ""
	if actor.Role != entity.RoleAdmin {
		ownerID = actor.ID
	}
	f := repository.TaskFilter{
		OwnerID:       ownerID,
		Status:        q.Status,
		Categoria:     q.Categoria,
		Prioridade:    q.Prioridade,
		ResponsavelID: q.ResponsavelID,
		Search:        q.Search,
		Skip:          skip,
		Limit:         limit,
	}

	tasks, err := uc.tasks.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.tasks.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return &dto.TaskListResponse{Tasks: out, Total: total, Skip: skip, Limit: limit}, nil
}

// Update atualização parcial; concluir força progresso 100 e carimba a
// data de conclusão.
func (uc *TaskUseCase) Update(ctx context.Context, actor *entity.User, id string, req dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	t, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.OwnerAllowed(actor, t.CriadorID, t.ResponsavelID) {
		return nil, domain.ErrForbidden
	}

	if req.Titulo != nil {
		t.Titulo = *req.Titulo
	}
	if req.Descricao != nil {
		t.Descricao = *req.Descricao
	}
	if req.Prioridade != nil {
		t.Prioridade = entity.Prioridade(*req.Prioridade)
	}
	if req.Categoria != nil {
		t.Categoria = entity.Setor(*req.Categoria)
	}
	if req.ResponsavelID != nil {
		responsavel, err := uc.users.GetByID(ctx, *req.ResponsavelID)
		if err != nil {
			return nil, err
		}
		t.ResponsavelID = responsavel.ID
		t.ResponsavelNome = responsavel.Name
	}
	if req.DataPrazo != nil {
		prazo, err := dto.ParseDate("data_prazo", *req.DataPrazo)
		if err != nil {
			return nil, err
		}
		t.DataPrazo = &prazo
	}
	if req.Progresso != nil {
		t.Progresso = *req.Progresso
	}
	if req.Tags != nil {
		t.Tags = *req.Tags
	}
	if req.Arquivos != nil {
		t.Arquivos = *req.Arquivos
	}
	if req.Status != nil {
		t.Status = entity.StatusTask(*req.Status)
		if t.Status == entity.TaskConcluida {
			t.Progresso = 100
			if t.DataConclusao == nil {
				agora := time.Now().UTC()
				t.DataConclusao = &agora
			}
		}
	}
	t.UpdatedAt = time.Now().UTC()

	if err := uc.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTaskResponse(t), nil
}

// AddComentario anexa um comentário à tarefa em uma única escrita.
func (uc *TaskUseCase) AddComentario(ctx context.Context, actor *entity.User, id string, req dto.ComentarioRequest) (*dto.TaskResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	t, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.OwnerAllowed(actor, t.CriadorID, t.ResponsavelID) {
		return nil, domain.ErrForbidden
	}

	agora := time.Now().UTC()
	c := entity.TaskComment{
		ID:          uuid.NewString(),
		UsuarioID:   actor.ID,
		UsuarioNome: actor.Name,
		Comentario:  req.Comentario,
		Timestamp:   agora,
	}
	if err := uc.tasks.AppendComentario(ctx, id, c, agora); err != nil {
		return nil, err
	}

	t, err = uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(t), nil
}

// Stats painel de tarefas, restrito ao recorte de posse do usuário.
func (uc *TaskUseCase) Stats(ctx context.Context, actor *entity.User) (*dto.TaskStatsResponse, error) {
	ownerID := ""
	if actor.Role != entity.RoleAdmin {
		ownerID = actor.ID
	}
	s, err := uc.tasks.Stats(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &dto.TaskStatsResponse{
		PorStatus:     s.PorStatus,
		PorPrioridade: s.PorPrioridade,
		PorCategoria:  s.PorCategoria,
	}, nil
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	comentarios := t.Comentarios
	if comentarios == nil {
		comentarios = []entity.TaskComment{}
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	arquivos := t.Arquivos
	if arquivos == nil {
		arquivos = []string{}
	}
	return &dto.TaskResponse{
		ID:              t.ID,
		Titulo:          t.Titulo,
		Descricao:       t.Descricao,
		Status:          string(t.Status),
		Prioridade:      string(t.Prioridade),
		Categoria:       string(t.Categoria),
		ResponsavelID:   t.ResponsavelID,
		ResponsavelNome: t.ResponsavelNome,
		CriadorID:       t.CriadorID,
		CriadorNome:     t.CriadorNome,
		DataCriacao:     t.DataCriacao,
		DataPrazo:       dto.FormatDatePtr(t.DataPrazo),
		DataConclusao:   dto.FormatDatePtr(t.DataConclusao),
		Progresso:       t.Progresso,
		Comentarios:     comentarios,
		Tags:            tags,
		Arquivos:        arquivos,
		UpdatedAt:       t.UpdatedAt,
	}
}
