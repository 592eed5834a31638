package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipo de obrigação fiscal acessória.
type TipoObrigacao string

const (
	ObrigacaoPGDAS TipoObrigacao = "pgdas"
	ObrigacaoDCTF  TipoObrigacao = "dctf"
	ObrigacaoSPED  TipoObrigacao = "sped"
	ObrigacaoDEFIS TipoObrigacao = "defis"
	ObrigacaoDARF  TipoObrigacao = "darf"
)

func (t TipoObrigacao) Valid() bool {
	switch t {
	case ObrigacaoPGDAS, ObrigacaoDCTF, ObrigacaoSPED, ObrigacaoDEFIS, ObrigacaoDARF:
		return true
	}
	return false
}

func TipoObrigacaoValues() []string {
	return []string{"pgdas", "dctf", "sped", "defis", "darf"}
}

// Periodicidade da obrigação.
type Periodicidade string

const (
	PeriodicidadeMensal     Periodicidade = "mensal"
	PeriodicidadeTrimestral Periodicidade = "trimestral"
	PeriodicidadeSemestral  Periodicidade = "semestral"
	PeriodicidadeAnual      Periodicidade = "anual"
	PeriodicidadeEvento     Periodicidade = "evento"
)

func (p Periodicidade) Valid() bool {
	switch p {
	case PeriodicidadeMensal, PeriodicidadeTrimestral, PeriodicidadeSemestral, PeriodicidadeAnual, PeriodicidadeEvento:
		return true
	}
	return false
}

func PeriodicidadeValues() []string {
	return []string{"mensal", "trimestral", "semestral", "anual", "evento"}
}

// Status de entrega da obrigação.
type StatusObrigacao string

const (
	ObrigacaoPendente    StatusObrigacao = "pendente"
	ObrigacaoEmAndamento StatusObrigacao = "em_andamento"
	ObrigacaoEntregue    StatusObrigacao = "entregue"
	ObrigacaoAtrasada    StatusObrigacao = "atrasado"
)

func (s StatusObrigacao) Valid() bool {
	switch s {
	case ObrigacaoPendente, ObrigacaoEmAndamento, ObrigacaoEntregue, ObrigacaoAtrasada:
		return true
	}
	return false
}

func StatusObrigacaoValues() []string {
	return []string{"pendente", "em_andamento", "entregue", "atrasado"}
}

// ObrigacaoFiscal é uma obrigação acessória de um cliente com vencimento.
type ObrigacaoFiscal struct {
	ID            string
	EmpresaID     string
	Empresa       string
	Tipo          TipoObrigacao
	Nome          string
	Periodicidade Periodicidade
	Vencimento    time.Time
	Status        StatusObrigacao
	Responsavel   string
	Documentos    []string
	Observacoes   string
	Valor         *decimal.Decimal
	DataEntrega   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
