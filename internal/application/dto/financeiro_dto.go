package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// CreateContaRequest emissão de uma conta a receber.
// Datas puras no formato 2006-01-02.
type CreateContaRequest struct {
	EmpresaID         string          `json:"empresa_id" validate:"required"`
	Empresa           string          `json:"empresa" validate:"required"`
	Descricao         string          `json:"descricao" validate:"required"`
	Documento         string          `json:"documento"`
	FormaPagamento    string          `json:"forma_pagamento"`
	Conta             string          `json:"conta"`
	CentroCusto       string          `json:"centro_custo"`
	PlanoCusto        string          `json:"plano_custo"`
	DataEmissao       string          `json:"data_emissao" validate:"required"`
	DataVencimento    string          `json:"data_vencimento" validate:"required"`
	ValorOriginal     decimal.Decimal `json:"valor_original" validate:"required"`
	Observacao        string          `json:"observacao"`
	CidadeAtendimento string          `json:"cidade_atendimento" validate:"required"`
}

// UpdateContaRequest atualização parcial dos campos editáveis da conta.
// Situação e valores de quitação mudam só pelos endpoints próprios.
type UpdateContaRequest struct {
	Descricao         *string          `json:"descricao"`
	Documento         *string          `json:"documento"`
	FormaPagamento    *string          `json:"forma_pagamento"`
	Conta             *string          `json:"conta"`
	CentroCusto       *string          `json:"centro_custo"`
	PlanoCusto        *string          `json:"plano_custo"`
	DataVencimento    *string          `json:"data_vencimento"`
	ValorOriginal     *decimal.Decimal `json:"valor_original"`
	Observacao        *string          `json:"observacao"`
	CidadeAtendimento *string          `json:"cidade_atendimento"`
}

// BaixaRequest quitação de uma conta.
type BaixaRequest struct {
	ValorRecebido   decimal.Decimal  `json:"valor_recebido" validate:"required"`
	DataRecebimento string           `json:"data_recebimento" validate:"required"`
	Desconto        *decimal.Decimal `json:"desconto"`
	Acrescimo       *decimal.Decimal `json:"acrescimo"`
	Observacao      string           `json:"observacao"`
}

// SituacaoRequest transição manual de situação (atrasado, cancelado...).
type SituacaoRequest struct {
	Situacao   string `json:"situacao" validate:"required,oneof=em_aberto pago atrasado renegociado cancelado"`
	Observacao string `json:"observacao"`
}

// ContaResponse conta a receber completa, com histórico.
type ContaResponse struct {
	ID                 string                 `json:"id"`
	EmpresaID          string                 `json:"empresa_id"`
	Empresa            string                 `json:"empresa"`
	Situacao           string                 `json:"situacao"`
	Descricao          string                 `json:"descricao"`
	Documento          string                 `json:"documento,omitempty"`
	FormaPagamento     string                 `json:"forma_pagamento,omitempty"`
	Conta              string                 `json:"conta,omitempty"`
	CentroCusto        string                 `json:"centro_custo,omitempty"`
	PlanoCusto         string                 `json:"plano_custo,omitempty"`
	DataEmissao        string                 `json:"data_emissao"`
	DataVencimento     string                 `json:"data_vencimento"`
	ValorOriginal      decimal.Decimal        `json:"valor_original"`
	Observacao         string                 `json:"observacao,omitempty"`
	CidadeAtendimento  string                 `json:"cidade_atendimento"`
	DataRecebimento    string                 `json:"data_recebimento,omitempty"`
	DescontoAplicado   decimal.Decimal        `json:"desconto_aplicado"`
	AcrescimoAplicado  decimal.Decimal        `json:"acrescimo_aplicado"`
	ValorQuitado       decimal.Decimal        `json:"valor_quitado"`
	Troco              decimal.Decimal        `json:"troco"`
	TotalBruto         decimal.Decimal        `json:"total_bruto"`
	TotalLiquido       decimal.Decimal        `json:"total_liquido"`
	UsuarioResponsavel string                 `json:"usuario_responsavel,omitempty"`
	Historico          []entity.HistoricoAcao `json:"historico"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

// ContaListResponse envelope de listagem de contas.
type ContaListResponse struct {
	Contas []*ContaResponse `json:"contas"`
	Total  int64            `json:"total"`
	Skip   int              `json:"skip"`
	Limit  int              `json:"limit"`
}

// DashboardFinanceiroResponse totais por situação, já recortados pelas
// cidades do usuário.
type DashboardFinanceiroResponse struct {
	TotalAberto   decimal.Decimal `json:"total_aberto"`
	TotalAtrasado decimal.Decimal `json:"total_atrasado"`
	TotalRecebido decimal.Decimal `json:"total_recebido"`
}

// CreateFinancialClientRequest perfil de cobrança recorrente.
type CreateFinancialClientRequest struct {
	EmpresaID              string          `json:"empresa_id" validate:"required"`
	Empresa                string          `json:"empresa" validate:"required"`
	ValorComDesconto       decimal.Decimal `json:"valor_com_desconto"`
	ValorBoleto            decimal.Decimal `json:"valor_boleto"`
	DiaVencimento          int             `json:"dia_vencimento" validate:"required,min=1,max=31"`
	TipoHonorario          string          `json:"tipo_honorario" validate:"required,oneof=mensal avulso anual"`
	EmpresaIndividualGrupo string          `json:"empresa_individual_grupo" validate:"required,oneof=individual grupo"`
	ContasPagamento        []string        `json:"contas_pagamento"`
	TipoPagamento          string          `json:"tipo_pagamento" validate:"required,oneof=recorrente unico"`
	FormaPagamentoEspecial string          `json:"forma_pagamento_especial"`
	TipoEmpresa            string          `json:"tipo_empresa"`
	StatusPagamento        string          `json:"status_pagamento" validate:"omitempty,oneof=em_dia atrasado renegociado"`
}

// FinancialClientResponse perfil de cobrança completo.
type FinancialClientResponse struct {
	ID                     string          `json:"id"`
	EmpresaID              string          `json:"empresa_id"`
	Empresa                string          `json:"empresa"`
	ValorComDesconto       decimal.Decimal `json:"valor_com_desconto"`
	ValorBoleto            decimal.Decimal `json:"valor_boleto"`
	DiaVencimento          int             `json:"dia_vencimento"`
	TipoHonorario          string          `json:"tipo_honorario"`
	EmpresaIndividualGrupo string          `json:"empresa_individual_grupo"`
	ContasPagamento        []string        `json:"contas_pagamento"`
	TipoPagamento          string          `json:"tipo_pagamento"`
	FormaPagamentoEspecial string          `json:"forma_pagamento_especial,omitempty"`
	TipoEmpresa            string          `json:"tipo_empresa,omitempty"`
	UltimoPagamento        string          `json:"ultimo_pagamento,omitempty"`
	StatusPagamento        string          `json:"status_pagamento"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// FinancialClientListResponse envelope de listagem de perfis de cobrança.
type FinancialClientListResponse struct {
	Clients []*FinancialClientResponse `json:"clients"`
	Total   int64                      `json:"total"`
	Skip    int                        `json:"skip"`
	Limit   int                        `json:"limit"`
}
