package financeiro_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/financeiro"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func contaAberta() *entity.ContaReceber {
	c := &entity.ContaReceber{
		ID:            "c-1",
		EmpresaID:     "e-1",
		Empresa:       "Padaria Central LTDA",
		ValorOriginal: dec("1200.00"),
	}
	financeiro.NovaConta(c, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	return c
}

func TestNovaConta(t *testing.T) {
	c := contaAberta()

	assert.Equal(t, entity.SituacaoEmAberto, c.Situacao)
	assert.True(t, c.TotalBruto.Equal(dec("1200.00")))
	assert.True(t, c.TotalLiquido.Equal(dec("1200.00")))
	assert.Empty(t, c.Historico)
}

func TestAplicarBaixa(t *testing.T) {
	c := contaAberta()
	agora := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	financeiro.AplicarBaixa(c, financeiro.Baixa{
		ValorRecebido:   dec("1100.00"),
		DataRecebimento: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Desconto:        dec("150.00"),
		Acrescimo:       dec("25.00"),
		Observacao:      "desconto negociado por atraso nosso",
	}, "Maria Macedo", agora)

	assert.Equal(t, entity.SituacaoPago, c.Situacao)
	assert.True(t, c.TotalLiquido.Equal(dec("1075.00")), "1200 - 150 + 25")
	assert.True(t, c.ValorQuitado.Equal(dec("1100.00")),
		"valor quitado não é validado contra o total líquido")
	require.NotNil(t, c.DataRecebimento)
	require.Len(t, c.Historico, 1)
	assert.Equal(t, "Baixa realizada", c.Historico[0].Acao)
	assert.Equal(t, "Maria Macedo", c.Historico[0].Usuario)
	require.NotNil(t, c.Historico[0].Valor)
	assert.True(t, c.Historico[0].Valor.Equal(dec("1100.00")))
}

func TestAplicarBaixa_RepetidaSobrescreveEAnexaHistorico(t *testing.T) {
	c := contaAberta()
	agora := time.Now().UTC()

	financeiro.AplicarBaixa(c, financeiro.Baixa{ValorRecebido: dec("500"), DataRecebimento: agora}, "Ana", agora)
	financeiro.AplicarBaixa(c, financeiro.Baixa{ValorRecebido: dec("700"), DataRecebimento: agora, Desconto: dec("10")}, "Ana", agora)

	assert.Equal(t, entity.SituacaoPago, c.Situacao)
	assert.True(t, c.ValorQuitado.Equal(dec("700")), "última baixa vence")
	assert.True(t, c.TotalLiquido.Equal(dec("1190")))
	assert.Len(t, c.Historico, 2, "as duas entradas de auditoria persistem")
}

func TestPodeTransicionar(t *testing.T) {
	tests := []struct {
		de, para entity.Situacao
		want     bool
	}{
		{entity.SituacaoEmAberto, entity.SituacaoPago, true},
		{entity.SituacaoEmAberto, entity.SituacaoAtrasado, true},
		{entity.SituacaoEmAberto, entity.SituacaoRenegociado, true},
		{entity.SituacaoEmAberto, entity.SituacaoCancelado, true},
		{entity.SituacaoAtrasado, entity.SituacaoPago, true},
		{entity.SituacaoRenegociado, entity.SituacaoPago, true},
		{entity.SituacaoPago, entity.SituacaoEmAberto, false},
		{entity.SituacaoCancelado, entity.SituacaoPago, false},
		{entity.SituacaoAtrasado, entity.SituacaoCancelado, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, financeiro.PodeTransicionar(tt.de, tt.para),
			"%s -> %s", tt.de, tt.para)
	}
}

func TestAplicarSituacao(t *testing.T) {
	c := contaAberta()
	agora := time.Now().UTC()

	ok := financeiro.AplicarSituacao(c, entity.SituacaoAtrasado, "Ana", "vencida há 15 dias", agora)
	require.True(t, ok)
	assert.Equal(t, entity.SituacaoAtrasado, c.Situacao)
	require.Len(t, c.Historico, 1)

	ok = financeiro.AplicarSituacao(c, entity.SituacaoCancelado, "Ana", "", agora)
	assert.False(t, ok, "atrasado não cancela diretamente")
	assert.Equal(t, entity.SituacaoAtrasado, c.Situacao, "situação intacta após aresta inválida")
	assert.Len(t, c.Historico, 1, "nenhuma entrada anexada após aresta inválida")
}

func TestSituacoesEmAberto(t *testing.T) {
	tests := []struct {
		situacao entity.Situacao
		emAberto bool
	}{
		{entity.SituacaoEmAberto, true},
		{entity.SituacaoAtrasado, true},
		{entity.SituacaoRenegociado, true},
		{entity.SituacaoPago, false},
		{entity.SituacaoCancelado, false},
	}
	saldo := financeiro.SituacoesEmAberto()
	for _, tt := range tests {
		contem := false
		for _, s := range saldo {
			if s == string(tt.situacao) {
				contem = true
			}
		}
		assert.Equal(t, tt.emAberto, contem, "%s no saldo em aberto", tt.situacao)
	}
	assert.Len(t, saldo, 3)
}
