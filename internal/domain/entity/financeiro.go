package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Situação de uma conta a receber.
type Situacao string

const (
	SituacaoEmAberto    Situacao = "em_aberto"
	SituacaoPago        Situacao = "pago"
	SituacaoAtrasado    Situacao = "atrasado"
	SituacaoRenegociado Situacao = "renegociado"
	SituacaoCancelado   Situacao = "cancelado"
)

func (s Situacao) Valid() bool {
	switch s {
	case SituacaoEmAberto, SituacaoPago, SituacaoAtrasado, SituacaoRenegociado, SituacaoCancelado:
		return true
	}
	return false
}

func SituacaoValues() []string {
	return []string{"em_aberto", "pago", "atrasado", "renegociado", "cancelado"}
}

// HistoricoAcao é uma entrada imutável do histórico de uma conta
// (persistida como JSONB, somente append).
type HistoricoAcao struct {
	Data       time.Time        `json:"data"`
	Acao       string           `json:"acao"`
	Usuario    string           `json:"usuario"`
	Observacao string           `json:"observacao,omitempty"`
	Valor      *decimal.Decimal `json:"valor,omitempty"`
}

// ContaReceber é uma cobrança emitida para um cliente.
// Empresa carrega a razão social desnormalizada ao lado de EmpresaID.
type ContaReceber struct {
	ID                 string
	EmpresaID          string
	Empresa            string
	Situacao           Situacao
	Descricao          string
	Documento          string
	FormaPagamento     string
	Conta              string
	CentroCusto        string
	PlanoCusto         string
	DataEmissao        time.Time
	DataVencimento     time.Time
	ValorOriginal      decimal.Decimal
	Observacao         string
	CidadeAtendimento  string
	DataRecebimento    *time.Time
	DescontoAplicado   decimal.Decimal
	AcrescimoAplicado  decimal.Decimal
	ValorQuitado       decimal.Decimal
	Troco              decimal.Decimal
	TotalBruto         decimal.Decimal
	TotalLiquido       decimal.Decimal
	UsuarioResponsavel string
	Historico          []HistoricoAcao
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Tipo de honorário cobrado.
type TipoHonorario string

const (
	HonorarioMensal TipoHonorario = "mensal"
	HonorarioAvulso TipoHonorario = "avulso"
	HonorarioAnual  TipoHonorario = "anual"
)

func (t TipoHonorario) Valid() bool {
	return t == HonorarioMensal || t == HonorarioAvulso || t == HonorarioAnual
}

func TipoHonorarioValues() []string { return []string{"mensal", "avulso", "anual"} }

// Cobrança individual ou por grupo de empresas.
type EmpresaIndividualGrupo string

const (
	CobrancaIndividual EmpresaIndividualGrupo = "individual"
	CobrancaGrupo      EmpresaIndividualGrupo = "grupo"
)

func (e EmpresaIndividualGrupo) Valid() bool {
	return e == CobrancaIndividual || e == CobrancaGrupo
}

func EmpresaIndividualGrupoValues() []string { return []string{"individual", "grupo"} }

// Tipo de pagamento do honorário.
type TipoPagamento string

const (
	PagamentoRecorrente TipoPagamento = "recorrente"
	PagamentoUnico      TipoPagamento = "unico"
)

func (t TipoPagamento) Valid() bool {
	return t == PagamentoRecorrente || t == PagamentoUnico
}

func TipoPagamentoValues() []string { return []string{"recorrente", "unico"} }

// Situação de pagamento do cliente financeiro.
type StatusPagamento string

const (
	PagamentoEmDia       StatusPagamento = "em_dia"
	PagamentoAtrasado    StatusPagamento = "atrasado"
	PagamentoRenegociado StatusPagamento = "renegociado"
)

func (s StatusPagamento) Valid() bool {
	return s == PagamentoEmDia || s == PagamentoAtrasado || s == PagamentoRenegociado
}

func StatusPagamentoValues() []string { return []string{"em_dia", "atrasado", "renegociado"} }

// FinancialClient é o perfil de cobrança recorrente de um cliente.
// No máximo um por EmpresaID.
type FinancialClient struct {
	ID                     string
	EmpresaID              string
	Empresa                string
	ValorComDesconto       decimal.Decimal
	ValorBoleto            decimal.Decimal
	DiaVencimento          int // 1..31
	TipoHonorario          TipoHonorario
	EmpresaIndividualGrupo EmpresaIndividualGrupo
	ContasPagamento        []string
	TipoPagamento          TipoPagamento
	FormaPagamentoEspecial string
	TipoEmpresa            string
	UltimoPagamento        *time.Time
	StatusPagamento        StatusPagamento
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
