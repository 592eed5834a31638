package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipo de solicitação trabalhista.
type TipoSolicitacao string

const (
	SolicitacaoAdmissao    TipoSolicitacao = "admissao"
	SolicitacaoDemissao    TipoSolicitacao = "demissao"
	SolicitacaoFolha       TipoSolicitacao = "folha"
	SolicitacaoAfastamento TipoSolicitacao = "afastamento"
	SolicitacaoReclamacao  TipoSolicitacao = "reclamacao"
)

func (t TipoSolicitacao) Valid() bool {
	switch t {
	case SolicitacaoAdmissao, SolicitacaoDemissao, SolicitacaoFolha, SolicitacaoAfastamento, SolicitacaoReclamacao:
		return true
	}
	return false
}

func TipoSolicitacaoValues() []string {
	return []string{"admissao", "demissao", "folha", "afastamento", "reclamacao"}
}

// Status de andamento de uma solicitação.
type StatusSolicitacao string

const (
	SolicitacaoPendente    StatusSolicitacao = "pendente"
	SolicitacaoEmAndamento StatusSolicitacao = "em_andamento"
	SolicitacaoConcluida   StatusSolicitacao = "concluido"
	SolicitacaoAtrasada    StatusSolicitacao = "atrasado"
)

func (s StatusSolicitacao) Valid() bool {
	switch s {
	case SolicitacaoPendente, SolicitacaoEmAndamento, SolicitacaoConcluida, SolicitacaoAtrasada:
		return true
	}
	return false
}

func StatusSolicitacaoValues() []string {
	return []string{"pendente", "em_andamento", "concluido", "atrasado"}
}

// Funcionario são os dados do empregado envolvido (JSONB).
type Funcionario struct {
	Nome           string           `json:"nome"`
	CPF            string           `json:"cpf"`
	Funcao         string           `json:"funcao"`
	Salario        *decimal.Decimal `json:"salario,omitempty"`
	DataAdmissao   *time.Time       `json:"data_admissao,omitempty"`
	MotivoDemissao string           `json:"motivo_demissao,omitempty"`
}

// DetalheFolha resume a folha de pagamento de uma solicitação do tipo folha (JSONB).
type DetalheFolha struct {
	TotalFuncionarios int             `json:"total_funcionarios"`
	TotalProventos    decimal.Decimal `json:"total_proventos"`
	TotalDescontos    decimal.Decimal `json:"total_descontos"`
	TotalLiquido      decimal.Decimal `json:"total_liquido"`
}

// SolicitacaoTrabalhista é uma demanda do departamento pessoal.
type SolicitacaoTrabalhista struct {
	ID              string
	EmpresaID       string
	Empresa         string
	Tipo            TipoSolicitacao
	Descricao       string
	DataSolicitacao time.Time
	Prazo           time.Time
	Responsavel     string
	Status          StatusSolicitacao
	Arquivos        []string
	Observacoes     string
	Funcionario     *Funcionario
	Detalhes        *DetalheFolha
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
