package usecase

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

// fakeConfigRepo configurações em memória; aplica o filtro de escopo na
// "consulta", como o adaptador real.
type fakeConfigRepo struct {
	byID map[string]*entity.Configuracao
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{byID: map[string]*entity.Configuracao{}}
}

func (f *fakeConfigRepo) Create(_ context.Context, c *entity.Configuracao) error {
	clone := *c
	f.byID[c.ID] = &clone
	return nil
}

func (f *fakeConfigRepo) GetByID(_ context.Context, id string) (*entity.Configuracao, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeConfigRepo) selecionar(fl repository.ConfiguracaoFilter) []*entity.Configuracao {
	var out []*entity.Configuracao
	for _, c := range f.byID {
		if fl.Setores != nil && !contemSetor(fl.Setores, string(c.Setor)) {
			continue
		}
		if fl.Setor != "" && string(c.Setor) != fl.Setor {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Setor != out[j].Setor {
			return out[i].Setor < out[j].Setor
		}
		return out[i].Nome < out[j].Nome
	})
	return out
}

func (f *fakeConfigRepo) List(_ context.Context, fl repository.ConfiguracaoFilter) ([]*entity.Configuracao, error) {
	out := f.selecionar(fl)
	if fl.Skip >= len(out) {
		return nil, nil
	}
	out = out[fl.Skip:]
	if len(out) > fl.Limit {
		out = out[:fl.Limit]
	}
	return out, nil
}

func (f *fakeConfigRepo) Count(_ context.Context, fl repository.ConfiguracaoFilter) (int64, error) {
	return int64(len(f.selecionar(fl))), nil
}

func (f *fakeConfigRepo) Update(_ context.Context, c *entity.Configuracao) error {
	if _, ok := f.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *c
	f.byID[c.ID] = &clone
	return nil
}

func contemSetor(setores []string, s string) bool {
	for _, x := range setores {
		if x == s {
			return true
		}
	}
	return false
}

func configuracaoTestUseCase(t *testing.T) (*ConfiguracaoUseCase, *fakeConfigRepo) {
	t.Helper()
	configs := newFakeConfigRepo()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewConfiguracaoUseCase(configs, log), configs
}

var (
	admConfig   = &entity.User{ID: "adm", Name: "Admin", Role: entity.RoleAdmin}
	soFiscal    = &entity.User{ID: "u-fiscal", Name: "Rita", Role: entity.RoleColaborador, AllowedSectors: []entity.Setor{entity.SetorFiscal}}
	semSetores  = &entity.User{ID: "u-nada", Name: "Nilo", Role: entity.RoleColaborador}
	setorFiscal = entity.SetorFiscal
)

func semearConfiguracoes(t *testing.T, uc *ConfiguracaoUseCase) {
	t.Helper()
	// Várias do financeiro, que vêm antes de "fiscal" na ordenação.
	for _, nome := range []string{"centros de custo", "formas de pagamento", "planos de conta", "taxas"} {
		_, err := uc.Create(context.Background(), admConfig, dto.CreateConfiguracaoRequest{
			Setor:         "financeiro",
			Nome:          nome,
			Configuracoes: entity.Valores{"ativo": entity.Booleano(true)},
		})
		require.NoError(t, err)
	}
	_, err := uc.Create(context.Background(), admConfig, dto.CreateConfiguracaoRequest{
		Setor:         "fiscal",
		Nome:          "regimes",
		Configuracoes: entity.Valores{"padrao": entity.Texto("simples")},
	})
	require.NoError(t, err)
}

func TestListConfiguracoes_EscopoNaConsulta(t *testing.T) {
	uc, _ := configuracaoTestUseCase(t)
	semearConfiguracoes(t, uc)

	// Mesmo com a primeira página cheia de configurações do financeiro,
	// o colaborador fiscal recebe a dele na primeira página, e o total
	// conta só o que ele enxerga.
	out, err := uc.List(context.Background(), soFiscal, ListConfiguracoesQuery{Limit: 3})
	require.NoError(t, err)
	require.Len(t, out.Configuracoes, 1)
	assert.Equal(t, "regimes", out.Configuracoes[0].Nome)
	assert.Equal(t, int64(1), out.Total)

	// Admin enxerga tudo.
	out, err = uc.List(context.Background(), admConfig, ListConfiguracoesQuery{})
	require.NoError(t, err)
	assert.Len(t, out.Configuracoes, 5)
	assert.Equal(t, int64(5), out.Total)

	// Sem setores, nada: escopo vazio não vira irrestrito.
	out, err = uc.List(context.Background(), semSetores, ListConfiguracoesQuery{})
	require.NoError(t, err)
	assert.Empty(t, out.Configuracoes)
	assert.Zero(t, out.Total)
}

func TestConfiguracao_SetorForaDoEscopo(t *testing.T) {
	uc, _ := configuracaoTestUseCase(t)

	_, err := uc.Create(context.Background(), soFiscal, dto.CreateConfiguracaoRequest{
		Setor:         "financeiro",
		Nome:          "taxas",
		Configuracoes: entity.Valores{"ativo": entity.Booleano(true)},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	criada, err := uc.Create(context.Background(), soFiscal, dto.CreateConfiguracaoRequest{
		Setor:         string(setorFiscal),
		Nome:          "obrigações",
		Configuracoes: entity.Valores{"ativo": entity.Booleano(true)},
	})
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), semSetores, criada.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
