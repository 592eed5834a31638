package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuncionarioDTO dados do empregado envolvido na solicitação.
type FuncionarioDTO struct {
	Nome           string           `json:"nome" validate:"required"`
	CPF            string           `json:"cpf" validate:"required"`
	Funcao         string           `json:"funcao"`
	Salario        *decimal.Decimal `json:"salario"`
	DataAdmissao   string           `json:"data_admissao"`
	MotivoDemissao string           `json:"motivo_demissao"`
}

// DetalheFolhaDTO resumo de folha de pagamento.
type DetalheFolhaDTO struct {
	TotalFuncionarios int             `json:"total_funcionarios"`
	TotalProventos    decimal.Decimal `json:"total_proventos"`
	TotalDescontos    decimal.Decimal `json:"total_descontos"`
	TotalLiquido      decimal.Decimal `json:"total_liquido"`
}

// CreateSolicitacaoRequest abertura de solicitação trabalhista.
type CreateSolicitacaoRequest struct {
	EmpresaID   string           `json:"empresa_id" validate:"required"`
	Empresa     string           `json:"empresa" validate:"required"`
	Tipo        string           `json:"tipo" validate:"required,oneof=admissao demissao folha afastamento reclamacao"`
	Descricao   string           `json:"descricao" validate:"required"`
	Prazo       string           `json:"prazo" validate:"required"`
	Responsavel string           `json:"responsavel"`
	Arquivos    []string         `json:"arquivos"`
	Observacoes string           `json:"observacoes"`
	Funcionario *FuncionarioDTO  `json:"funcionario"`
	Detalhes    *DetalheFolhaDTO `json:"detalhes"`
}

// UpdateSolicitacaoRequest atualização parcial da solicitação.
type UpdateSolicitacaoRequest struct {
	Descricao   *string          `json:"descricao"`
	Prazo       *string          `json:"prazo"`
	Responsavel *string          `json:"responsavel"`
	Status      *string          `json:"status" validate:"omitempty,oneof=pendente em_andamento concluido atrasado"`
	Arquivos    *[]string        `json:"arquivos"`
	Observacoes *string          `json:"observacoes"`
	Funcionario *FuncionarioDTO  `json:"funcionario"`
	Detalhes    *DetalheFolhaDTO `json:"detalhes"`
}

// SolicitacaoResponse solicitação completa.
type SolicitacaoResponse struct {
	ID              string           `json:"id"`
	EmpresaID       string           `json:"empresa_id"`
	Empresa         string           `json:"empresa"`
	Tipo            string           `json:"tipo"`
	Descricao       string           `json:"descricao"`
	DataSolicitacao string           `json:"data_solicitacao"`
	Prazo           string           `json:"prazo"`
	Responsavel     string           `json:"responsavel,omitempty"`
	Status          string           `json:"status"`
	Arquivos        []string         `json:"arquivos"`
	Observacoes     string           `json:"observacoes,omitempty"`
	Funcionario     *FuncionarioDTO  `json:"funcionario,omitempty"`
	Detalhes        *DetalheFolhaDTO `json:"detalhes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// SolicitacaoListResponse envelope de listagem de solicitações.
type SolicitacaoListResponse struct {
	Solicitacoes []*SolicitacaoResponse `json:"solicitacoes"`
	Total        int64                  `json:"total"`
	Skip         int                    `json:"skip"`
	Limit        int                    `json:"limit"`
}

// TrabalhistaStatsResponse contagens por status e por tipo.
type TrabalhistaStatsResponse struct {
	PorStatus map[string]int64 `json:"por_status"`
	PorTipo   map[string]int64 `json:"por_tipo"`
}
