package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/access"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/financeiro"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

// ReciboGenerator gera o recibo em PDF de uma conta quitada.
type ReciboGenerator interface {
	GerarRecibo(conta *entity.ContaReceber) ([]byte, error)
}

// FinanceiroUseCase casos de uso de contas a receber e perfis de cobrança.
type FinanceiroUseCase struct {
	contas  repository.ContaReceberRepository
	perfis  repository.FinancialClientRepository
	recibos ReciboGenerator
	log     *logger.Logger
}

// NewFinanceiroUseCase cria o caso de uso financeiro.
func NewFinanceiroUseCase(
	contas repository.ContaReceberRepository,
	perfis repository.FinancialClientRepository,
	recibos ReciboGenerator,
	log *logger.Logger,
) *FinanceiroUseCase {
	return &FinanceiroUseCase{contas: contas, perfis: perfis, recibos: recibos, log: log}
}

// CreateConta emite uma conta a receber; nasce em aberto com os totais
// iguais ao valor original.
func (uc *FinanceiroUseCase) CreateConta(ctx context.Context, actor *entity.User, req dto.CreateContaRequest) (*dto.ContaResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if !access.CityAllowed(actor, req.CidadeAtendimento) {
		return nil, domain.ErrForbidden
	}

	emissao, err := dto.ParseDate("data_emissao", req.DataEmissao)
	if err != nil {
		return nil, err
	}
	vencimento, err := dto.ParseDate("data_vencimento", req.DataVencimento)
	if err != nil {
		return nil, err
	}
	if req.ValorOriginal.IsNegative() {
		return nil, domain.NewValidationError("valor_original")
	}

	conta := &entity.ContaReceber{
		ID:                uuid.NewString(),
		EmpresaID:         req.EmpresaID,
		Empresa:           req.Empresa,
		Descricao:         req.Descricao,
		Documento:         req.Documento,
		FormaPagamento:    req.FormaPagamento,
		Conta:             req.Conta,
		CentroCusto:       req.CentroCusto,
		PlanoCusto:        req.PlanoCusto,
		DataEmissao:       emissao,
		DataVencimento:    vencimento,
		ValorOriginal:     req.ValorOriginal,
		Observacao:        req.Observacao,
		CidadeAtendimento: req.CidadeAtendimento,
	}
	financeiro.NovaConta(conta, time.Now().UTC())

	if err := uc.contas.Create(ctx, conta); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("conta_id", conta.ID).
		Str("empresa_id", conta.EmpresaID).
		Str("valor", conta.ValorOriginal.String()).
		Msg("conta a receber emitida")
	return toContaResponse(conta), nil
}

// GetConta devolve uma conta; cidade fora do escopo responde como proibido.
func (uc *FinanceiroUseCase) GetConta(ctx context.Context, actor *entity.User, id string) (*dto.ContaResponse, error) {
	conta, err := uc.contas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CityAllowed(actor, conta.CidadeAtendimento) {
		return nil, domain.ErrForbidden
	}
	return toContaResponse(conta), nil
}

// ListContasQuery filtros de listagem vindos da rota.
type ListContasQuery struct {
	Cidade   string
	Situacao string
	Search   string
	Skip     int
	Limit    int
}

// ListContas lista contas recortadas pelo escopo de cidades do usuário.
func (uc *FinanceiroUseCase) ListContas(ctx context.Context, actor *entity.User, q ListContasQuery) (*dto.ContaListResponse, error) {
	skip, limit := clampPage(q.Skip, q.Limit, defaultLimit, maxRegistros)
	f := repository.ContaFilter{
		Cidades:  access.CityScope(actor),
		Cidade:   q.Cidade,
		Situacao: q.Situacao,
		Search:   q.Search,
		Skip:     skip,
		Limit:    limit,
	}

	contas, err := uc.contas.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.contas.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ContaResponse, len(contas))
	for i, c := range contas {
		out[i] = toContaResponse(c)
	}
	return &dto.ContaListResponse{Contas: out, Total: total, Skip: skip, Limit: limit}, nil
}

// UpdateConta atualização parcial dos campos editáveis; situação e
// valores de quitação só mudam pela baixa ou pela transição de situação.
func (uc *FinanceiroUseCase) UpdateConta(ctx context.Context, actor *entity.User, id string, req dto.UpdateContaRequest) (*dto.ContaResponse, error) {
	conta, err := uc.contas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CityAllowed(actor, conta.CidadeAtendimento) {
		return nil, domain.ErrForbidden
	}
	if req.CidadeAtendimento != nil && !access.CityAllowed(actor, *req.CidadeAtendimento) {
		return nil, domain.ErrForbidden
	}

	if req.Descricao != nil {
		conta.Descricao = *req.Descricao
	}
	if req.Documento != nil {
		conta.Documento = *req.Documento
	}
	if req.FormaPagamento != nil {
		conta.FormaPagamento = *req.FormaPagamento
	}
	if req.Conta != nil {
		conta.Conta = *req.Conta
	}
	if req.CentroCusto != nil {
		conta.CentroCusto = *req.CentroCusto
	}
	if req.PlanoCusto != nil {
		conta.PlanoCusto = *req.PlanoCusto
	}
	if req.DataVencimento != nil {
		venc, err := dto.ParseDate("data_vencimento", *req.DataVencimento)
		if err != nil {
			return nil, err
		}
		conta.DataVencimento = venc
	}
	if req.ValorOriginal != nil {
		if req.ValorOriginal.IsNegative() {
			return nil, domain.NewValidationError("valor_original")
		}
		conta.ValorOriginal = *req.ValorOriginal
		conta.TotalBruto = *req.ValorOriginal
		conta.TotalLiquido = financeiro.TotalLiquido(conta.ValorOriginal, conta.DescontoAplicado, conta.AcrescimoAplicado)
	}
	if req.Observacao != nil {
		conta.Observacao = *req.Observacao
	}
	if req.CidadeAtendimento != nil {
		conta.CidadeAtendimento = *req.CidadeAtendimento
	}
	conta.UpdatedAt = time.Now().UTC()

	if err := uc.contas.Update(ctx, conta); err != nil {
		return nil, err
	}
	return toContaResponse(conta), nil
}

// BaixarConta quita a conta: grava os valores da baixa, recalcula o
// total líquido e anexa a ação ao histórico, tudo em uma única escrita.
func (uc *FinanceiroUseCase) BaixarConta(ctx context.Context, actor *entity.User, id string, req dto.BaixaRequest) (*dto.ContaResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	conta, err := uc.contas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CityAllowed(actor, conta.CidadeAtendimento) {
		return nil, domain.ErrForbidden
	}

	recebimento, err := dto.ParseDate("data_recebimento", req.DataRecebimento)
	if err != nil {
		return nil, err
	}

	baixa := financeiro.Baixa{
		ValorRecebido:   req.ValorRecebido,
		DataRecebimento: recebimento,
		Desconto:        decimal.Zero,
		Acrescimo:       decimal.Zero,
		Observacao:      req.Observacao,
	}
	if req.Desconto != nil {
		baixa.Desconto = *req.Desconto
	}
	if req.Acrescimo != nil {
		baixa.Acrescimo = *req.Acrescimo
	}

	agora := time.Now().UTC()
	financeiro.AplicarBaixa(conta, baixa, actor.Name, agora)
	conta.UsuarioResponsavel = actor.Name

	if err := uc.contas.Update(ctx, conta); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("conta_id", conta.ID).
		Str("valor_recebido", req.ValorRecebido.String()).
		Str("user_id", actor.ID).
		Msg("baixa realizada")
	return toContaResponse(conta), nil
}

// AlterarSituacao move a conta pela máquina de situação (atrasado,
// renegociado, cancelado...); arestas fora da máquina são rejeitadas.
func (uc *FinanceiroUseCase) AlterarSituacao(ctx context.Context, actor *entity.User, id string, req dto.SituacaoRequest) (*dto.ContaResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	conta, err := uc.contas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CityAllowed(actor, conta.CidadeAtendimento) {
		return nil, domain.ErrForbidden
	}

	para := entity.Situacao(req.Situacao)
	if !financeiro.AplicarSituacao(conta, para, actor.Name, req.Observacao, time.Now().UTC()) {
		return nil, fmt.Errorf("%w: situação %s não pode ir para %s", domain.ErrInvalidInput, conta.Situacao, para)
	}

	if err := uc.contas.Update(ctx, conta); err != nil {
		return nil, err
	}
	return toContaResponse(conta), nil
}

// Dashboard agrega os totais por situação dentro do escopo de cidades.
func (uc *FinanceiroUseCase) Dashboard(ctx context.Context, actor *entity.User) (*dto.DashboardFinanceiroResponse, error) {
	d, err := uc.contas.Dashboard(ctx, access.CityScope(actor))
	if err != nil {
		return nil, err
	}
	return &dto.DashboardFinanceiroResponse{
		TotalAberto:   d.TotalAberto,
		TotalAtrasado: d.TotalAtrasado,
		TotalRecebido: d.TotalRecebido,
	}, nil
}

// Recibo gera o recibo em PDF de uma conta quitada.
func (uc *FinanceiroUseCase) Recibo(ctx context.Context, actor *entity.User, id string) ([]byte, error) {
	conta, err := uc.contas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CityAllowed(actor, conta.CidadeAtendimento) {
		return nil, domain.ErrForbidden
	}
	if conta.Situacao != entity.SituacaoPago {
		return nil, fmt.Errorf("%w: recibo só é emitido para conta paga", domain.ErrInvalidInput)
	}
	return uc.recibos.GerarRecibo(conta)
}

// CreateFinancialClient cadastra o perfil de cobrança recorrente de um
// cliente; no máximo um por empresa.
func (uc *FinanceiroUseCase) CreateFinancialClient(ctx context.Context, actor *entity.User, req dto.CreateFinancialClientRequest) (*dto.FinancialClientResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	status := entity.StatusPagamento(req.StatusPagamento)
	if req.StatusPagamento == "" {
		status = entity.PagamentoEmDia
	}

	now := time.Now().UTC()
	fc := &entity.FinancialClient{
		ID:                     uuid.NewString(),
		EmpresaID:              req.EmpresaID,
		Empresa:                req.Empresa,
		ValorComDesconto:       req.ValorComDesconto,
		ValorBoleto:            req.ValorBoleto,
		DiaVencimento:          req.DiaVencimento,
		TipoHonorario:          entity.TipoHonorario(req.TipoHonorario),
		EmpresaIndividualGrupo: entity.EmpresaIndividualGrupo(req.EmpresaIndividualGrupo),
		ContasPagamento:        req.ContasPagamento,
		TipoPagamento:          entity.TipoPagamento(req.TipoPagamento),
		FormaPagamentoEspecial: req.FormaPagamentoEspecial,
		TipoEmpresa:            req.TipoEmpresa,
		StatusPagamento:        status,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.perfis.Create(ctx, fc); err != nil {
		return nil, err
	}
	return toFinancialClientResponse(fc), nil
}

// GetFinancialClient devolve o perfil de cobrança de uma empresa.
func (uc *FinanceiroUseCase) GetFinancialClient(ctx context.Context, empresaID string) (*dto.FinancialClientResponse, error) {
	fc, err := uc.perfis.GetByEmpresaID(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	return toFinancialClientResponse(fc), nil
}

// ListFinancialClientsQuery filtros de listagem de perfis de cobrança.
type ListFinancialClientsQuery struct {
	StatusPagamento string
	TipoHonorario   string
	Search          string
	Skip            int
	Limit           int
}

// ListFinancialClients lista perfis de cobrança.
func (uc *FinanceiroUseCase) ListFinancialClients(ctx context.Context, q ListFinancialClientsQuery) (*dto.FinancialClientListResponse, error) {
	skip, limit := clampPage(q.Skip, q.Limit, defaultLimit, maxRegistros)
	f := repository.FinancialClientFilter{
		StatusPagamento: q.StatusPagamento,
		TipoHonorario:   q.TipoHonorario,
		Search:          q.Search,
		Skip:            skip,
		Limit:           limit,
	}

	perfis, err := uc.perfis.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.perfis.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.FinancialClientResponse, len(perfis))
	for i, fc := range perfis {
		out[i] = toFinancialClientResponse(fc)
	}
	return &dto.FinancialClientListResponse{Clients: out, Total: total, Skip: skip, Limit: limit}, nil
}

func toContaResponse(c *entity.ContaReceber) *dto.ContaResponse {
	historico := c.Historico
	if historico == nil {
		historico = []entity.HistoricoAcao{}
	}
	return &dto.ContaResponse{
		ID:                 c.ID,
		EmpresaID:          c.EmpresaID,
		Empresa:            c.Empresa,
		Situacao:           string(c.Situacao),
		Descricao:          c.Descricao,
		Documento:          c.Documento,
		FormaPagamento:     c.FormaPagamento,
		Conta:              c.Conta,
		CentroCusto:        c.CentroCusto,
		PlanoCusto:         c.PlanoCusto,
		DataEmissao:        dto.FormatDate(c.DataEmissao),
		DataVencimento:     dto.FormatDate(c.DataVencimento),
		ValorOriginal:      c.ValorOriginal,
		Observacao:         c.Observacao,
		CidadeAtendimento:  c.CidadeAtendimento,
		DataRecebimento:    dto.FormatDatePtr(c.DataRecebimento),
		DescontoAplicado:   c.DescontoAplicado,
		AcrescimoAplicado:  c.AcrescimoAplicado,
		ValorQuitado:       c.ValorQuitado,
		Troco:              c.Troco,
		TotalBruto:         c.TotalBruto,
		TotalLiquido:       c.TotalLiquido,
		UsuarioResponsavel: c.UsuarioResponsavel,
		Historico:          historico,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func toFinancialClientResponse(fc *entity.FinancialClient) *dto.FinancialClientResponse {
	contas := fc.ContasPagamento
	if contas == nil {
		contas = []string{}
	}
	ultimo := ""
	if fc.UltimoPagamento != nil {
		ultimo = dto.FormatDate(*fc.UltimoPagamento)
	}
	return &dto.FinancialClientResponse{
		ID:                     fc.ID,
		EmpresaID:              fc.EmpresaID,
		Empresa:                fc.Empresa,
		ValorComDesconto:       fc.ValorComDesconto,
		ValorBoleto:            fc.ValorBoleto,
		DiaVencimento:          fc.DiaVencimento,
		TipoHonorario:          string(fc.TipoHonorario),
		EmpresaIndividualGrupo: string(fc.EmpresaIndividualGrupo),
		ContasPagamento:        contas,
		TipoPagamento:          string(fc.TipoPagamento),
		FormaPagamentoEspecial: fc.FormaPagamentoEspecial,
		TipoEmpresa:            fc.TipoEmpresa,
		UltimoPagamento:        ultimo,
		StatusPagamento:        string(fc.StatusPagamento),
		CreatedAt:              fc.CreatedAt,
		UpdatedAt:              fc.UpdatedAt,
	}
}
