package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

type fakeTaskRepo struct {
	tasks map[string]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entity.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) List(_ context.Context, f repository.TaskFilter) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if f.OwnerID != "" && t.CriadorID != f.OwnerID && t.ResponsavelID != f.OwnerID {
			continue
		}
		if f.Status != "" && string(t.Status) != f.Status {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTaskRepo) Count(ctx context.Context, f repository.TaskFilter) (int64, error) {
	out, err := r.List(ctx, f)
	return int64(len(out)), err
}

func (r *fakeTaskRepo) Update(_ context.Context, t *entity.Task) error {
	if _, ok := r.tasks[t.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) AppendComentario(_ context.Context, id string, c entity.TaskComment, agora time.Time) error {
	t, ok := r.tasks[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.Comentarios = append(t.Comentarios, c)
	t.UpdatedAt = agora
	return nil
}

func (r *fakeTaskRepo) Stats(_ context.Context, ownerID string) (*repository.TaskStats, error) {
	s := &repository.TaskStats{
		PorStatus:     map[string]int64{},
		PorPrioridade: map[string]int64{},
		PorCategoria:  map[string]int64{},
	}
	for _, t := range r.tasks {
		if ownerID != "" && t.CriadorID != ownerID && t.ResponsavelID != ownerID {
			continue
		}
		s.PorStatus[string(t.Status)]++
		s.PorPrioridade[string(t.Prioridade)]++
		s.PorCategoria[string(t.Categoria)]++
	}
	return s, nil
}

var (
	admTask  = &entity.User{ID: "adm", Name: "Admin", Role: entity.RoleAdmin}
	criador  = &entity.User{ID: "cri", Name: "Maria Criadora", Role: entity.RoleColaborador}
	resp     = &entity.User{ID: "res", Name: "João Responsável", Role: entity.RoleColaborador}
	terceiro = &entity.User{ID: "ter", Name: "Terceiro", Role: entity.RoleColaborador}
)

func taskTestUseCase(t *testing.T) (*TaskUseCase, *fakeTaskRepo) {
	t.Helper()
	tasks := newFakeTaskRepo()
	users := newFakeUserRepoForTasks()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewTaskUseCase(tasks, users, log), tasks
}

type fakeUserRepoForTasks struct {
	byID map[string]*entity.User
}

func newFakeUserRepoForTasks() *fakeUserRepoForTasks {
	return &fakeUserRepoForTasks{byID: map[string]*entity.User{
		admTask.ID:  admTask,
		criador.ID:  criador,
		resp.ID:     resp,
		terceiro.ID: terceiro,
	}}
}

func (r *fakeUserRepoForTasks) Create(_ context.Context, _ *entity.User) error { return nil }
func (r *fakeUserRepoForTasks) Update(_ context.Context, _ *entity.User) error { return nil }
func (r *fakeUserRepoForTasks) List(_ context.Context) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepoForTasks) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeUserRepoForTasks) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func criarTask(t *testing.T, uc *TaskUseCase) *dto.TaskResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), criador, dto.CreateTaskRequest{
		Titulo:        "Conferir balancete",
		Prioridade:    "alta",
		Categoria:     "contabil",
		ResponsavelID: resp.ID,
		DataPrazo:     "2026-09-05",
	})
	require.NoError(t, err)
	return out
}

func TestCreateTask(t *testing.T) {
	uc, _ := taskTestUseCase(t)

	out := criarTask(t, uc)
	assert.Equal(t, "pendente", out.Status)
	assert.Equal(t, "João Responsável", out.ResponsavelNome)
	assert.Equal(t, "Maria Criadora", out.CriadorNome)
	assert.Equal(t, 0, out.Progresso)

	t.Run("prazo é opcional", func(t *testing.T) {
		uc, repo := taskTestUseCase(t)
		out, err := uc.Create(context.Background(), criador, dto.CreateTaskRequest{
			Titulo:        "Organizar arquivo morto",
			Prioridade:    "baixa",
			Categoria:     "contabil",
			ResponsavelID: resp.ID,
		})
		require.NoError(t, err)
		assert.Empty(t, out.DataPrazo)
		assert.Nil(t, repo.tasks[out.ID].DataPrazo, "tarefa sem prazo persiste com data_prazo nulo")
	})

	t.Run("responsável inexistente", func(t *testing.T) {
		_, err := uc.Create(context.Background(), criador, dto.CreateTaskRequest{
			Titulo:        "x",
			Prioridade:    "baixa",
			Categoria:     "fiscal",
			ResponsavelID: "fantasma",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTaskOwnership(t *testing.T) {
	uc, _ := taskTestUseCase(t)
	task := criarTask(t, uc)

	t.Run("criador e responsável enxergam", func(t *testing.T) {
		_, err := uc.Get(context.Background(), criador, task.ID)
		assert.NoError(t, err)
		_, err = uc.Get(context.Background(), resp, task.ID)
		assert.NoError(t, err)
	})

	t.Run("admin enxerga", func(t *testing.T) {
		_, err := uc.Get(context.Background(), admTask, task.ID)
		assert.NoError(t, err)
	})

	t.Run("terceiro não enxerga nem altera", func(t *testing.T) {
		_, err := uc.Get(context.Background(), terceiro, task.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		_, err = uc.Update(context.Background(), terceiro, task.ID, dto.UpdateTaskRequest{})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("listagem do terceiro vem vazia", func(t *testing.T) {
		out, err := uc.List(context.Background(), terceiro, ListTasksQuery{})
		require.NoError(t, err)
		assert.Empty(t, out.Tasks)
		assert.Zero(t, out.Total)
	})
}

func TestConcluirTask(t *testing.T) {
	uc, _ := taskTestUseCase(t)
	task := criarTask(t, uc)

	status := "concluida"
	out, err := uc.Update(context.Background(), resp, task.ID, dto.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "concluida", out.Status)
	assert.Equal(t, 100, out.Progresso)
	assert.NotEmpty(t, out.DataConclusao)
}

func TestAddComentario(t *testing.T) {
	uc, _ := taskTestUseCase(t)
	task := criarTask(t, uc)

	out, err := uc.AddComentario(context.Background(), resp, task.ID, dto.ComentarioRequest{
		Comentario: "faltam os extratos de julho",
	})
	require.NoError(t, err)
	require.Len(t, out.Comentarios, 1)
	assert.Equal(t, "João Responsável", out.Comentarios[0].UsuarioNome)

	_, err = uc.AddComentario(context.Background(), terceiro, task.ID, dto.ComentarioRequest{Comentario: "x"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskStats(t *testing.T) {
	uc, _ := taskTestUseCase(t)
	criarTask(t, uc)
	criarTask(t, uc)

	s, err := uc.Stats(context.Background(), criador)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.PorStatus["pendente"])

	s, err = uc.Stats(context.Background(), terceiro)
	require.NoError(t, err)
	assert.Zero(t, s.PorStatus["pendente"])
}
