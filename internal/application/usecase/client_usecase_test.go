package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	for _, e := range r.clients {
		if e.CNPJ == c.CNPJ {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetByCNPJ(_ context.Context, cnpj string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.CNPJ == cnpj {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeClientRepo) List(_ context.Context, f repository.ClientFilter) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if !cidadeNoEscopo(f.Cidades, c.Cidade) {
			continue
		}
		if f.Cidade != "" && c.Cidade != f.Cidade {
			continue
		}
		if f.Status != "" && string(c.Status) != f.Status {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(c.NomeEmpresa), strings.ToLower(f.Search)) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeClientRepo) Count(ctx context.Context, f repository.ClientFilter) (int64, error) {
	out, err := r.List(ctx, f)
	return int64(len(out)), err
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

func clientTestUseCase(t *testing.T) *ClientUseCase {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewClientUseCase(newFakeClientRepo(), log)
}

var colabJacobina = &entity.User{
	ID:            "col-jac",
	Name:          "Colaborador Jacobina",
	Role:          entity.RoleColaborador,
	AllowedCities: []string{"jacobina"},
}

func clientRequest(cidade, cnpj string) dto.CreateClientRequest {
	return dto.CreateClientRequest{
		NomeEmpresa:  "Mercado Central LTDA",
		NomeFantasia: "Mercado Central",
		Cidade:       cidade,
		Telefone:     "74 3621-0000",
		Whatsapp:     "74 99999-0000",
		Email:        "contato@mercadocentral.com",
		Responsavel:  "Carlos Souza",
		CNPJ:         cnpj,
		FormaEnvio:   "whatsapp",
		CodigoIOB:    "1042",
		TipoEmpresa:  "matriz",
		Endereco: entity.Endereco{
			Logradouro: "Rua do Comércio",
			Bairro:     "Centro",
			CEP:        "44700-000",
			Cidade:     cidade,
			Estado:     "BA",
		},
		TipoRegime: "simples",
	}
}

func TestCreateClient(t *testing.T) {
	uc := clientTestUseCase(t)

	resp, err := uc.Create(context.Background(), colabJacobina, clientRequest("jacobina", "11.111.111/0001-11"))
	require.NoError(t, err)
	assert.Equal(t, "ativa", resp.Status)

	t.Run("cidade fora do escopo", func(t *testing.T) {
		_, err := uc.Create(context.Background(), colabJacobina, clientRequest("ourolandia", "22.222.222/0001-22"))
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("cnpj duplicado", func(t *testing.T) {
		_, err := uc.Create(context.Background(), adminFin, clientRequest("jacobina", "11.111.111/0001-11"))
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestListClientsEscopo(t *testing.T) {
	uc := clientTestUseCase(t)
	_, err := uc.Create(context.Background(), adminFin, clientRequest("jacobina", "11.111.111/0001-11"))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), adminFin, clientRequest("ourolandia", "22.222.222/0001-22"))
	require.NoError(t, err)

	t.Run("admin enxerga tudo", func(t *testing.T) {
		out, err := uc.List(context.Background(), adminFin, ListClientsQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), out.Total)
	})

	t.Run("colaborador recortado pela cidade", func(t *testing.T) {
		out, err := uc.List(context.Background(), colabJacobina, ListClientsQuery{})
		require.NoError(t, err)
		require.Equal(t, int64(1), out.Total)
		assert.Equal(t, "jacobina", out.Clients[0].Cidade)
	})

	t.Run("colaborador sem cidades não enxerga nada", func(t *testing.T) {
		semCidades := &entity.User{ID: "x", Role: entity.RoleColaborador}
		out, err := uc.List(context.Background(), semCidades, ListClientsQuery{})
		require.NoError(t, err)
		assert.Zero(t, out.Total)
	})
}

func TestGetClientEscopo(t *testing.T) {
	uc := clientTestUseCase(t)
	criado, err := uc.Create(context.Background(), adminFin, clientRequest("ourolandia", "22.222.222/0001-22"))
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), colabJacobina, criado.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByCNPJ(context.Background(), adminFin, "22.222.222/0001-22")
	assert.NoError(t, err)
}

func TestDeleteClient(t *testing.T) {
	uc := clientTestUseCase(t)
	criado, err := uc.Create(context.Background(), adminFin, clientRequest("jacobina", "11.111.111/0001-11"))
	require.NoError(t, err)

	t.Run("colaborador não remove", func(t *testing.T) {
		err := uc.Delete(context.Background(), colabJacobina, criado.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("admin remove", func(t *testing.T) {
		require.NoError(t, uc.Delete(context.Background(), adminFin, criado.ID))
		_, err := uc.Get(context.Background(), adminFin, criado.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
