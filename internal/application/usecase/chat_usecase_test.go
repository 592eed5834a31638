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
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

// fakeChatRepo sala em memória para os testes do caso de uso.
type fakeChatRepo struct {
	byID map[string]*entity.Chat
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{byID: map[string]*entity.Chat{}}
}

func (f *fakeChatRepo) Create(_ context.Context, c *entity.Chat) error {
	clone := *c
	f.byID[c.ID] = &clone
	return nil
}

func (f *fakeChatRepo) GetByID(_ context.Context, id string) (*entity.Chat, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeChatRepo) ListByParticipant(_ context.Context, userID string, skip, limit int) ([]*entity.Chat, error) {
	var out []*entity.Chat
	for _, c := range f.byID {
		if c.Participa(userID) {
			clone := *c
			out = append(out, &clone)
		}
	}
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeChatRepo) CountByParticipant(_ context.Context, userID string) (int64, error) {
	var total int64
	for _, c := range f.byID {
		if c.Participa(userID) {
			total++
		}
	}
	return total, nil
}

func (f *fakeChatRepo) AppendMensagem(_ context.Context, id string, m entity.Mensagem, agora time.Time) error {
	c, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Mensagens = append(c.Mensagens, m)
	c.UpdatedAt = agora
	return nil
}

func chatTestUseCase(t *testing.T) (*ChatUseCase, *fakeChatRepo) {
	t.Helper()
	chats := newFakeChatRepo()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewChatUseCase(chats, log), chats
}

var (
	admChat   = &entity.User{ID: "adm", Name: "Admin", Role: entity.RoleAdmin}
	ana       = &entity.User{ID: "u-ana", Name: "Ana", Role: entity.RoleColaborador}
	bruno     = &entity.User{ID: "u-bruno", Name: "Bruno", Role: entity.RoleColaborador}
	deFora    = &entity.User{ID: "u-fora", Name: "Carla", Role: entity.RoleColaborador}
	salaDeAna = dto.CreateChatRequest{
		Nome:          "Fechamento mensal",
		Tipo:          "grupo",
		Participantes: []string{"u-bruno"},
	}
)

func TestCreateChat(t *testing.T) {
	uc, _ := chatTestUseCase(t)

	resp, err := uc.Create(context.Background(), ana, salaDeAna)
	require.NoError(t, err)

	// Quem cria vira admin e entra nos participantes mesmo sem se listar.
	assert.Equal(t, ana.ID, resp.AdminID)
	assert.Contains(t, resp.Participantes, ana.ID)
	assert.Contains(t, resp.Participantes, bruno.ID)
	assert.True(t, resp.Ativo)
}

func TestGetChat_SoParticipantes(t *testing.T) {
	uc, _ := chatTestUseCase(t)
	sala, err := uc.Create(context.Background(), ana, salaDeAna)
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), bruno, sala.ID)
	assert.NoError(t, err)

	_, err = uc.Get(context.Background(), deFora, sala.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Admin do sistema enxerga qualquer sala.
	_, err = uc.Get(context.Background(), admChat, sala.ID)
	assert.NoError(t, err)
}

func TestAddMensagem(t *testing.T) {
	uc, repo := chatTestUseCase(t)
	sala, err := uc.Create(context.Background(), ana, salaDeAna)
	require.NoError(t, err)

	resp, err := uc.AddMensagem(context.Background(), bruno, sala.ID, dto.MensagemRequest{Mensagem: "bom dia"})
	require.NoError(t, err)
	require.Len(t, resp.Mensagens, 1)
	assert.Equal(t, "bom dia", resp.Mensagens[0].Mensagem)
	assert.Equal(t, bruno.Name, resp.Mensagens[0].UsuarioNome)
	assert.Equal(t, entity.MensagemTexto, resp.Mensagens[0].Tipo)

	// Quem não participa não envia.
	_, err = uc.AddMensagem(context.Background(), deFora, sala.ID, dto.MensagemRequest{Mensagem: "oi"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Sala desativada não recebe mensagens.
	repo.byID[sala.ID].Ativo = false
	_, err = uc.AddMensagem(context.Background(), ana, sala.ID, dto.MensagemRequest{Mensagem: "alguém?"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListMensagens_Paginacao(t *testing.T) {
	uc, _ := chatTestUseCase(t)
	sala, err := uc.Create(context.Background(), ana, salaDeAna)
	require.NoError(t, err)

	for _, txt := range []string{"primeira", "segunda", "terceira"} {
		_, err := uc.AddMensagem(context.Background(), ana, sala.ID, dto.MensagemRequest{Mensagem: txt})
		require.NoError(t, err)
	}

	// Mais recentes primeiro.
	pagina, err := uc.ListMensagens(context.Background(), bruno, sala.ID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pagina.Total)
	require.Len(t, pagina.Mensagens, 2)
	assert.Equal(t, "terceira", pagina.Mensagens[0].Mensagem)
	assert.Equal(t, "segunda", pagina.Mensagens[1].Mensagem)

	pagina, err = uc.ListMensagens(context.Background(), bruno, sala.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, pagina.Mensagens, 1)
	assert.Equal(t, "primeira", pagina.Mensagens[0].Mensagem)

	_, err = uc.ListMensagens(context.Background(), deFora, sala.ID, 0, 10)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListChats_SemMensagens(t *testing.T) {
	uc, _ := chatTestUseCase(t)
	sala, err := uc.Create(context.Background(), ana, salaDeAna)
	require.NoError(t, err)
	_, err = uc.AddMensagem(context.Background(), ana, sala.ID, dto.MensagemRequest{Mensagem: "oi"})
	require.NoError(t, err)

	lista, err := uc.List(context.Background(), ana, 0, 0)
	require.NoError(t, err)
	require.Len(t, lista.Chats, 1)
	assert.Equal(t, int64(1), lista.Total)
	// A listagem é leve: as mensagens ficam de fora.
	assert.Empty(t, lista.Chats[0].Mensagens)

	lista, err = uc.List(context.Background(), deFora, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, lista.Chats)
}
