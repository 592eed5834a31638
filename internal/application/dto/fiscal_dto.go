package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateObrigacaoRequest cadastro de obrigação fiscal.
type CreateObrigacaoRequest struct {
	EmpresaID     string           `json:"empresa_id" validate:"required"`
	Empresa       string           `json:"empresa" validate:"required"`
	Tipo          string           `json:"tipo" validate:"required,oneof=pgdas dctf sped defis darf"`
	Nome          string           `json:"nome" validate:"required"`
	Periodicidade string           `json:"periodicidade" validate:"required,oneof=mensal trimestral semestral anual evento"`
	Vencimento    string           `json:"vencimento" validate:"required"`
	Responsavel   string           `json:"responsavel"`
	Documentos    []string         `json:"documentos"`
	Observacoes   string           `json:"observacoes"`
	Valor         *decimal.Decimal `json:"valor"`
}

// UpdateObrigacaoRequest atualização parcial da obrigação.
// DataEntrega em branco não altera; preenchida carimba a entrega.
type UpdateObrigacaoRequest struct {
	Nome          *string          `json:"nome"`
	Periodicidade *string          `json:"periodicidade" validate:"omitempty,oneof=mensal trimestral semestral anual evento"`
	Vencimento    *string          `json:"vencimento"`
	Status        *string          `json:"status" validate:"omitempty,oneof=pendente em_andamento entregue atrasado"`
	Responsavel   *string          `json:"responsavel"`
	Documentos    *[]string        `json:"documentos"`
	Observacoes   *string          `json:"observacoes"`
	Valor         *decimal.Decimal `json:"valor"`
	DataEntrega   *string          `json:"data_entrega"`
}

// ObrigacaoResponse obrigação fiscal completa.
type ObrigacaoResponse struct {
	ID            string           `json:"id"`
	EmpresaID     string           `json:"empresa_id"`
	Empresa       string           `json:"empresa"`
	Tipo          string           `json:"tipo"`
	Nome          string           `json:"nome"`
	Periodicidade string           `json:"periodicidade"`
	Vencimento    string           `json:"vencimento"`
	Status        string           `json:"status"`
	Responsavel   string           `json:"responsavel,omitempty"`
	Documentos    []string         `json:"documentos"`
	Observacoes   string           `json:"observacoes,omitempty"`
	Valor         *decimal.Decimal `json:"valor,omitempty"`
	DataEntrega   string           `json:"data_entrega,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ObrigacaoListResponse envelope de listagem de obrigações.
type ObrigacaoListResponse struct {
	Obrigacoes []*ObrigacaoResponse `json:"obrigacoes"`
	Total      int64                `json:"total"`
	Skip       int                  `json:"skip"`
	Limit      int                  `json:"limit"`
}
