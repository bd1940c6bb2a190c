package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rmonteiro/carteira"
)

// PositionsMarkdown renders the position list as a markdown table, in ledger
// order, followed by the portfolio totals.
func PositionsMarkdown(positions []carteira.Position) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Carteira")
	if len(positions) == 0 {
		doc.PlainText("Nenhum ativo cadastrado.")
		return doc.String()
	}

	rows := make([][]string, 0, len(positions))
	for _, p := range positions {
		rows = append(rows, []string{
			p.AssetName,
			categoryCell(p.Category),
			formatQuantity(p.Quantity),
			p.AmountInvested.String(),
			p.CurrentValue.String(),
			p.PerformancePct.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Ativo", "Categoria", "Qtde", "Investido", "Atual", "Resultado"},
		Rows:   rows,
	})

	s := carteira.Summarize(positions)
	doc.PlainText(fmt.Sprintf("Total investido %s, valor atual %s (%s)",
		s.Invested, s.CurrentValue, s.GainLossPct.SignedString()))

	return doc.String()
}
