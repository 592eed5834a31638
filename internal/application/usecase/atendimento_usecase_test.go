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

// fakeTicketRepo tickets em memória para os testes do caso de uso.
type fakeTicketRepo struct {
	byID map[string]*entity.Ticket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{byID: map[string]*entity.Ticket{}}
}

func (f *fakeTicketRepo) Create(_ context.Context, t *entity.Ticket) error {
	clone := *t
	f.byID[t.ID] = &clone
	return nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, id string) (*entity.Ticket, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTicketRepo) List(_ context.Context, fl repository.TicketFilter) ([]*entity.Ticket, error) {
	var out []*entity.Ticket
	for _, t := range f.byID {
		if fl.Status != "" && string(t.Status) != fl.Status {
			continue
		}
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeTicketRepo) Count(_ context.Context, fl repository.TicketFilter) (int64, error) {
	tickets, _ := f.List(context.Background(), fl)
	return int64(len(tickets)), nil
}

func (f *fakeTicketRepo) Update(_ context.Context, t *entity.Ticket) error {
	if _, ok := f.byID[t.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *t
	f.byID[t.ID] = &clone
	return nil
}

func (f *fakeTicketRepo) AppendConversa(_ context.Context, id string, c entity.Conversa, agora time.Time) error {
	t, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.Conversas = append(t.Conversas, c)
	t.UpdatedAt = agora
	return nil
}

func atendimentoTestUseCase(t *testing.T) (*AtendimentoUseCase, *fakeTicketRepo) {
	t.Helper()
	tickets := newFakeTicketRepo()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewAtendimentoUseCase(tickets, log), tickets
}

var atendente = &entity.User{ID: "u-atende", Name: "Paula", Role: entity.RoleColaborador}

func novoChamado() dto.CreateTicketRequest {
	return dto.CreateTicketRequest{
		EmpresaID:  "emp-1",
		Empresa:    "Padaria Central",
		Titulo:     "Guia não recebida",
		Descricao:  "Cliente não recebeu a guia do mês",
		Prioridade: "alta",
		Canal:      "whatsapp",
	}
}

func TestCreateTicket(t *testing.T) {
	uc, _ := atendimentoTestUseCase(t)

	resp, err := uc.Create(context.Background(), atendente, novoChamado())
	require.NoError(t, err)

	assert.Equal(t, "aberto", resp.Status)
	// Sem responsável informado, quem abre assume o chamado.
	assert.Equal(t, atendente.Name, resp.Responsavel)
	// O SLA é o fim do dia da abertura, em UTC.
	assert.Equal(t, entity.SLADoDia(resp.DataAbertura), resp.SLA)
	assert.Empty(t, resp.Conversas)
}

func TestCreateTicket_PrioridadeInvalida(t *testing.T) {
	uc, _ := atendimentoTestUseCase(t)

	req := novoChamado()
	req.Prioridade = "altissima"
	_, err := uc.Create(context.Background(), atendente, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddConversa(t *testing.T) {
	uc, repo := atendimentoTestUseCase(t)
	criado, err := uc.Create(context.Background(), atendente, novoChamado())
	require.NoError(t, err)

	antes := repo.byID[criado.ID].UpdatedAt

	resp, err := uc.AddConversa(context.Background(), atendente, criado.ID, dto.ConversaRequest{
		Mensagem: "Guia reenviada por whatsapp",
	})
	require.NoError(t, err)
	require.Len(t, resp.Conversas, 1)
	assert.Equal(t, atendente.Name, resp.Conversas[0].Usuario)
	assert.Equal(t, "Guia reenviada por whatsapp", resp.Conversas[0].Mensagem)
	assert.False(t, resp.UpdatedAt.Before(antes))

	_, err = uc.AddConversa(context.Background(), atendente, "nao-existe", dto.ConversaRequest{Mensagem: "oi"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateTicket_Status(t *testing.T) {
	uc, _ := atendimentoTestUseCase(t)
	criado, err := uc.Create(context.Background(), atendente, novoChamado())
	require.NoError(t, err)

	status := "resolvido"
	resp, err := uc.Update(context.Background(), criado.ID, dto.UpdateTicketRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "resolvido", resp.Status)

	invalido := "cancelado"
	_, err = uc.Update(context.Background(), criado.ID, dto.UpdateTicketRequest{Status: &invalido})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
