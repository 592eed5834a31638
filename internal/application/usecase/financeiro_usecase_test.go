package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

type fakeContaRepo struct {
	contas map[string]*entity.ContaReceber
}

func newFakeContaRepo() *fakeContaRepo {
	return &fakeContaRepo{contas: map[string]*entity.ContaReceber{}}
}

func (r *fakeContaRepo) Create(_ context.Context, c *entity.ContaReceber) error {
	cp := *c
	r.contas[c.ID] = &cp
	return nil
}

func (r *fakeContaRepo) GetByID(_ context.Context, id string) (*entity.ContaReceber, error) {
	c, ok := r.contas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContaRepo) List(_ context.Context, f repository.ContaFilter) ([]*entity.ContaReceber, error) {
	var out []*entity.ContaReceber
	for _, c := range r.contas {
		if !cidadeNoEscopo(f.Cidades, c.CidadeAtendimento) {
			continue
		}
		if f.Situacao != "" && string(c.Situacao) != f.Situacao {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeContaRepo) Count(ctx context.Context, f repository.ContaFilter) (int64, error) {
	out, err := r.List(ctx, f)
	return int64(len(out)), err
}

func (r *fakeContaRepo) Update(_ context.Context, c *entity.ContaReceber) error {
	if _, ok := r.contas[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.contas[c.ID] = &cp
	return nil
}

func (r *fakeContaRepo) Dashboard(_ context.Context, cidades []string) (*repository.DashboardFinanceiro, error) {
	d := &repository.DashboardFinanceiro{
		TotalAberto:   decimal.Zero,
		TotalAtrasado: decimal.Zero,
		TotalRecebido: decimal.Zero,
	}
	for _, c := range r.contas {
		if !cidadeNoEscopo(cidades, c.CidadeAtendimento) {
			continue
		}
		switch c.Situacao {
		case entity.SituacaoEmAberto:
			d.TotalAberto = d.TotalAberto.Add(c.TotalLiquido)
		case entity.SituacaoAtrasado:
			d.TotalAtrasado = d.TotalAtrasado.Add(c.TotalLiquido)
		case entity.SituacaoPago:
			d.TotalRecebido = d.TotalRecebido.Add(c.ValorQuitado)
		}
	}
	return d, nil
}

func cidadeNoEscopo(escopo []string, cidade string) bool {
	if escopo == nil {
		return true
	}
	for _, c := range escopo {
		if c == cidade {
			return true
		}
	}
	return false
}

type fakePerfilRepo struct {
	porEmpresa map[string]*entity.FinancialClient
}

func newFakePerfilRepo() *fakePerfilRepo {
	return &fakePerfilRepo{porEmpresa: map[string]*entity.FinancialClient{}}
}

func (r *fakePerfilRepo) Create(_ context.Context, fc *entity.FinancialClient) error {
	if _, ok := r.porEmpresa[fc.EmpresaID]; ok {
		return domain.ErrDuplicate
	}
	cp := *fc
	r.porEmpresa[fc.EmpresaID] = &cp
	return nil
}

func (r *fakePerfilRepo) GetByEmpresaID(_ context.Context, empresaID string) (*entity.FinancialClient, error) {
	fc, ok := r.porEmpresa[empresaID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *fc
	return &cp, nil
}

func (r *fakePerfilRepo) List(_ context.Context, _ repository.FinancialClientFilter) ([]*entity.FinancialClient, error) {
	var out []*entity.FinancialClient
	for _, fc := range r.porEmpresa {
		cp := *fc
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePerfilRepo) Count(_ context.Context, _ repository.FinancialClientFilter) (int64, error) {
	return int64(len(r.porEmpresa)), nil
}

type fakeRecibos struct{}

func (fakeRecibos) GerarRecibo(_ *entity.ContaReceber) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

func financeiroTestUseCase(t *testing.T) (*FinanceiroUseCase, *fakeContaRepo) {
	t.Helper()
	contas := newFakeContaRepo()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := NewFinanceiroUseCase(contas, newFakePerfilRepo(), fakeRecibos{}, log)
	return uc, contas
}

var (
	adminFin = &entity.User{ID: "adm", Name: "Admin", Role: entity.RoleAdmin}
	colabFin = &entity.User{
		ID:            "col",
		Name:          "Colaborador",
		Role:          entity.RoleColaborador,
		AllowedCities: []string{"jacobina"},
	}
)

func criarConta(t *testing.T, uc *FinanceiroUseCase, cidade, valor string) *dto.ContaResponse {
	t.Helper()
	resp, err := uc.CreateConta(context.Background(), adminFin, dto.CreateContaRequest{
		EmpresaID:         "emp-1",
		Empresa:           "Mercado Central LTDA",
		Descricao:         "Honorários mensais",
		DataEmissao:       "2026-08-01",
		DataVencimento:    "2026-08-10",
		ValorOriginal:     decimal.RequireFromString(valor),
		CidadeAtendimento: cidade,
	})
	require.NoError(t, err)
	return resp
}

func TestCreateConta(t *testing.T) {
	uc, _ := financeiroTestUseCase(t)

	resp := criarConta(t, uc, "jacobina", "1200")
	assert.Equal(t, "em_aberto", resp.Situacao)
	assert.True(t, resp.TotalLiquido.Equal(decimal.RequireFromString("1200")))
	assert.True(t, resp.ValorQuitado.IsZero())
	assert.Empty(t, resp.Historico)

	t.Run("cidade fora do escopo do colaborador", func(t *testing.T) {
		_, err := uc.CreateConta(context.Background(), colabFin, dto.CreateContaRequest{
			EmpresaID:         "emp-2",
			Empresa:           "Filial Ourolândia",
			Descricao:         "Honorários",
			DataEmissao:       "2026-08-01",
			DataVencimento:    "2026-08-10",
			ValorOriginal:     decimal.RequireFromString("500"),
			CidadeAtendimento: "ourolandia",
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestBaixarConta(t *testing.T) {
	uc, _ := financeiroTestUseCase(t)
	conta := criarConta(t, uc, "jacobina", "1200")

	desconto := decimal.RequireFromString("150")
	acrescimo := decimal.RequireFromString("25")
	resp, err := uc.BaixarConta(context.Background(), colabFin, conta.ID, dto.BaixaRequest{
		ValorRecebido:   decimal.RequireFromString("1100"),
		DataRecebimento: "2026-08-15",
		Desconto:        &desconto,
		Acrescimo:       &acrescimo,
		Observacao:      "pagamento negociado",
	})
	require.NoError(t, err)

	assert.Equal(t, "pago", resp.Situacao)
	assert.True(t, resp.TotalLiquido.Equal(decimal.RequireFromString("1075")))
	assert.True(t, resp.ValorQuitado.Equal(decimal.RequireFromString("1100")))
	assert.Equal(t, "2026-08-15", resp.DataRecebimento)
	require.Len(t, resp.Historico, 1)
	assert.Equal(t, "Baixa realizada", resp.Historico[0].Acao)
	assert.Equal(t, "Colaborador", resp.Historico[0].Usuario)

	t.Run("cidade fora do escopo", func(t *testing.T) {
		outra := criarConta(t, uc, "ourolandia", "300")
		_, err := uc.BaixarConta(context.Background(), colabFin, outra.ID, dto.BaixaRequest{
			ValorRecebido:   decimal.RequireFromString("300"),
			DataRecebimento: "2026-08-15",
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("conta inexistente", func(t *testing.T) {
		_, err := uc.BaixarConta(context.Background(), adminFin, "nao-existe", dto.BaixaRequest{
			ValorRecebido:   decimal.RequireFromString("10"),
			DataRecebimento: "2026-08-15",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAlterarSituacao(t *testing.T) {
	uc, _ := financeiroTestUseCase(t)
	conta := criarConta(t, uc, "jacobina", "800")

	resp, err := uc.AlterarSituacao(context.Background(), adminFin, conta.ID, dto.SituacaoRequest{
		Situacao:   "atrasado",
		Observacao: "vencida há 10 dias",
	})
	require.NoError(t, err)
	assert.Equal(t, "atrasado", resp.Situacao)
	require.Len(t, resp.Historico, 1)

	t.Run("atrasado só vai para pago", func(t *testing.T) {
		_, err := uc.AlterarSituacao(context.Background(), adminFin, conta.ID, dto.SituacaoRequest{Situacao: "cancelado"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestDashboard(t *testing.T) {
	uc, _ := financeiroTestUseCase(t)
	criarConta(t, uc, "jacobina", "1000")
	criarConta(t, uc, "ourolandia", "400")

	aberta := criarConta(t, uc, "jacobina", "600")
	_, err := uc.BaixarConta(context.Background(), adminFin, aberta.ID, dto.BaixaRequest{
		ValorRecebido:   decimal.RequireFromString("600"),
		DataRecebimento: "2026-08-20",
	})
	require.NoError(t, err)

	t.Run("admin enxerga tudo", func(t *testing.T) {
		d, err := uc.Dashboard(context.Background(), adminFin)
		require.NoError(t, err)
		assert.True(t, d.TotalAberto.Equal(decimal.RequireFromString("1400")))
		assert.True(t, d.TotalRecebido.Equal(decimal.RequireFromString("600")))
	})

	t.Run("colaborador só enxerga as próprias cidades", func(t *testing.T) {
		d, err := uc.Dashboard(context.Background(), colabFin)
		require.NoError(t, err)
		assert.True(t, d.TotalAberto.Equal(decimal.RequireFromString("1000")))
		assert.True(t, d.TotalRecebido.Equal(decimal.RequireFromString("600")))
	})
}

func TestRecibo(t *testing.T) {
	uc, _ := financeiroTestUseCase(t)
	conta := criarConta(t, uc, "jacobina", "500")

	t.Run("conta em aberto não tem recibo", func(t *testing.T) {
		_, err := uc.Recibo(context.Background(), adminFin, conta.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	_, err := uc.BaixarConta(context.Background(), adminFin, conta.ID, dto.BaixaRequest{
		ValorRecebido:   decimal.RequireFromString("500"),
		DataRecebimento: "2026-08-20",
	})
	require.NoError(t, err)

	pdf, err := uc.Recibo(context.Background(), adminFin, conta.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestCreateFinancialClient(t *testing.T) {
	uc, _ := financeiroTestUseCase(t)

	req := dto.CreateFinancialClientRequest{
		EmpresaID:              "emp-1",
		Empresa:                "Mercado Central LTDA",
		ValorComDesconto:       decimal.RequireFromString("450"),
		ValorBoleto:            decimal.RequireFromString("500"),
		DiaVencimento:          10,
		TipoHonorario:          "mensal",
		EmpresaIndividualGrupo: "individual",
		TipoPagamento:          "recorrente",
	}

	resp, err := uc.CreateFinancialClient(context.Background(), adminFin, req)
	require.NoError(t, err)
	assert.Equal(t, "em_dia", resp.StatusPagamento)

	t.Run("no máximo um perfil por empresa", func(t *testing.T) {
		_, err := uc.CreateFinancialClient(context.Background(), adminFin, req)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("dia de vencimento fora de 1..31", func(t *testing.T) {
		bad := req
		bad.EmpresaID = "emp-2"
		bad.DiaVencimento = 32
		_, err := uc.CreateFinancialClient(context.Background(), adminFin, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
