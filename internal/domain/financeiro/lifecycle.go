// Package financeiro implementa o ciclo de vida de contas a receber:
// abertura, mudanças de situação e baixa, com totais derivados e
// histórico imutável de ações.
package financeiro

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// transicoes são as arestas válidas da máquina de situação.
// Pago e cancelado são terminais no fluxo normal; atrasado e
// renegociado ainda podem ser quitados.
var transicoes = map[entity.Situacao][]entity.Situacao{
	entity.SituacaoEmAberto:    {entity.SituacaoPago, entity.SituacaoAtrasado, entity.SituacaoRenegociado, entity.SituacaoCancelado},
	entity.SituacaoAtrasado:    {entity.SituacaoPago},
	entity.SituacaoRenegociado: {entity.SituacaoPago},
}

// SituacoesEmAberto são as situações que compõem o saldo em aberto do
// painel financeiro: tudo que ainda pode ser cobrado. Contas pagas e
// canceladas ficam de fora.
func SituacoesEmAberto() []string {
	return []string{
		string(entity.SituacaoEmAberto),
		string(entity.SituacaoAtrasado),
		string(entity.SituacaoRenegociado),
	}
}

// PodeTransicionar informa se a aresta de→para pertence à máquina de situação.
func PodeTransicionar(de, para entity.Situacao) bool {
	for _, p := range transicoes[de] {
		if p == para {
			return true
		}
	}
	return false
}

// NovaConta prepara uma conta recém-emitida: situação em aberto,
// totais iguais ao valor original e histórico vazio.
func NovaConta(c *entity.ContaReceber, agora time.Time) {
	c.Situacao = entity.SituacaoEmAberto
	c.TotalBruto = c.ValorOriginal
	c.TotalLiquido = c.ValorOriginal
	c.DescontoAplicado = decimal.Zero
	c.AcrescimoAplicado = decimal.Zero
	c.ValorQuitado = decimal.Zero
	c.Troco = decimal.Zero
	c.Historico = nil
	c.CreatedAt = agora
	c.UpdatedAt = agora
}

// Baixa são os dados de uma quitação.
type Baixa struct {
	ValorRecebido   decimal.Decimal
	DataRecebimento time.Time
	Desconto        decimal.Decimal
	Acrescimo       decimal.Decimal
	Observacao      string
}

// TotalLiquido deriva o total líquido de uma baixa:
// valor original − desconto + acréscimo.
func TotalLiquido(valorOriginal, desconto, acrescimo decimal.Decimal) decimal.Decimal {
	return valorOriginal.Sub(desconto).Add(acrescimo)
}

// AplicarBaixa quita a conta: situação pago, valores da baixa gravados,
// total líquido recalculado e uma entrada anexada ao histórico.
//
// O valor recebido NÃO é validado contra o total líquido: pagamentos
// parciais ou negociados podem quitar por valor diferente do calculado.
// A operação também não é idempotente: repetir a baixa sobrescreve a
// situação e os valores e anexa uma segunda entrada de histórico, então
// o chamador deve tratá-la como no máximo uma por pagamento real.
func AplicarBaixa(c *entity.ContaReceber, b Baixa, usuario string, agora time.Time) {
	c.Situacao = entity.SituacaoPago
	recebimento := b.DataRecebimento
	c.DataRecebimento = &recebimento
	c.DescontoAplicado = b.Desconto
	c.AcrescimoAplicado = b.Acrescimo
	c.ValorQuitado = b.ValorRecebido
	c.TotalLiquido = TotalLiquido(c.ValorOriginal, b.Desconto, b.Acrescimo)
	c.UpdatedAt = agora

	valor := b.ValorRecebido
	c.Historico = append(c.Historico, entity.HistoricoAcao{
		Data:       agora,
		Acao:       "Baixa realizada",
		Usuario:    usuario,
		Observacao: b.Observacao,
		Valor:      &valor,
	})
}

// AplicarSituacao move a conta para uma nova situação pela máquina de
// estados e registra a mudança no histórico. Retorna false se a aresta
// não existir (por exemplo, reabrir uma conta paga).
func AplicarSituacao(c *entity.ContaReceber, para entity.Situacao, usuario, observacao string, agora time.Time) bool {
	if !PodeTransicionar(c.Situacao, para) {
		return false
	}
	c.Situacao = para
	c.UpdatedAt = agora
	c.Historico = append(c.Historico, entity.HistoricoAcao{
		Data:       agora,
		Acao:       "Situação alterada para " + string(para),
		Usuario:    usuario,
		Observacao: observacao,
	})
	return true
}
