// Package pdf implementa a geração do recibo de quitação de uma conta
// a receber.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Macedo Contábil  │  RECIBO + data de emissão       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGADOR: razão social + documento da cobrança              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Descrição | Vencimento | Recebimento | Valor       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Original / Desconto / Acréscimo / TOTAL QUITADO    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: responsável pela baixa + declaração de quitação    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 15, Green: 76, Blue: 58}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReciboGenerator implementa usecase.ReciboGenerator usando Maroto v2.
type MarotoReciboGenerator struct{}

// NewMarotoReciboGenerator constrói o gerador.
func NewMarotoReciboGenerator() *MarotoReciboGenerator { return &MarotoReciboGenerator{} }

// GerarRecibo gera o PDF do recibo e devolve seus bytes.
func (g *MarotoReciboGenerator) GerarRecibo(conta *entity.ContaReceber) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Quitação", true).
		WithAuthor("Macedo Contábil", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRow(conta))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(pagadorRow(conta))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))

	m.AddRows(tabelaCabecalhoRow())
	m.AddRows(tabelaContaRow(conta))

	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(totaisRow(conta))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: corCinza, Thickness: 0.3}))
	for _, r := range rodapeRows(conta) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// cabecalhoRow: firma (esq) e título RECIBO + data de recebimento (dir).
func cabecalhoRow(conta *entity.ContaReceber) core.Row {
	recebimento := "—"
	if conta.DataRecebimento != nil {
		recebimento = conta.DataRecebimento.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Macedo Contábil", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
			text.New("Sistema Interno de Gestão", props.Text{
				Size: 9, Top: 9, Color: corCinza,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE QUITAÇÃO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: corPrimaria, Top: 1,
			}),
			text.New(conta.ID, props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: corCinza,
			}),
			text.New("Recebido em: "+recebimento, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: corCinza,
			}),
		),
	)
}

// pagadorRow: razão social do pagador + dados da cobrança.
func pagadorRow(conta *entity.ContaReceber) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PAGADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
			}),
			text.New(conta.Empresa, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Documento: %s   |   Forma de pagamento: %s   |   Cidade: %s",
				seNaoVazio(conta.Documento, "—"),
				seNaoVazio(conta.FormaPagamento, "—"),
				seNaoVazio(conta.CidadeAtendimento, "—"),
			), props.Text{Size: 8, Top: 12, Color: corCinza}),
		),
	)
}

// tabelaCabecalhoRow: cabeçalho da tabela da cobrança.
func tabelaCabecalhoRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: corPrimaria, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Descrição", 6, align.Left),
		h("Vencimento", 2, align.Center),
		h("Recebimento", 2, align.Center),
		h("Valor", 2, align.Right),
	)
}

// tabelaContaRow: a linha única da cobrança quitada.
func tabelaContaRow(conta *entity.ContaReceber) core.Row {
	recebimento := "—"
	if conta.DataRecebimento != nil {
		recebimento = conta.DataRecebimento.Format("02/01/2006")
	}
	return row.New(7).Add(
		col.New(6).Add(text.New(
			seNaoVazio(conta.Descricao, "Honorários contábeis"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			conta.DataVencimento.Format("02/01/2006"),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			recebimento,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			"R$ "+formatarValor(conta.ValorOriginal),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totaisRow: bloco de totais alinhado à direita.
func totaisRow(conta *entity.ContaReceber) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	totalLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: corPrimaria, Right: 2,
		})
	}
	totalValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: corPrimaria, Right: 1,
		})
	}

	return row.New(30).Add(
		col.New(3),
		col.New(4).Add(
			label("Valor original:"),
			label("Desconto:"),
			label("Acréscimo:"),
			totalLabel("TOTAL QUITADO:"),
		),
		col.New(3).Add(
			value("R$ "+formatarValor(conta.ValorOriginal)),
			value("R$ "+formatarValor(conta.DescontoAplicado)),
			value("R$ "+formatarValor(conta.AcrescimoAplicado)),
			totalValue("R$ "+formatarValor(conta.TotalLiquido)),
		),
		col.New(2),
	)
}

// rodapeRows: responsável pela baixa + declaração de quitação.
func rodapeRows(conta *entity.ContaReceber) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Responsável pelo recebimento: "+seNaoVazio(conta.UsuarioResponsavel, "—"), props.Text{
				Size: 8, Color: corCinza, Top: 1,
			}),
		)),
	}
	if conta.Observacao != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Observação: "+conta.Observacao, props.Text{
				Size: 8, Color: corCinza, Top: 1,
			}),
		)))
	}
	rows = append(rows, row.New(10).Add(col.New(12).Add(
		text.New(
			"Declaramos, para os devidos fins, que recebemos a importância acima "+
				"discriminada, dando plena e total quitação do valor correspondente.",
			props.Text{Size: 7, Color: corCinza, Top: 2},
		),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func seNaoVazio(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatarValor formata um decimal no padrão brasileiro.
// Ex: 1234.5 → "1.234,50"
func formatarValor(v decimal.Decimal) string {
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	inteiro := s[:len(s)-3]
	centavos := s[len(s)-2:]

	n := len(inteiro)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, inteiro[i])
	}

	out := string(buf) + "," + centavos
	if neg {
		out = "-" + out
	}
	return out
}
