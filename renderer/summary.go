package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/rmonteiro/carteira"
)

// SummaryMarkdown renders the portfolio totals as a two column table.
func SummaryMarkdown(s carteira.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Resumo")
	doc.Table(md.TableSet{
		Header: []string{"", "Valor"},
		Rows: [][]string{
			{"Investido", s.Invested.String()},
			{"Atual", s.CurrentValue.String()},
			{"Resultado", s.GainLoss.SignedString()},
			{"Rentabilidade", s.GainLossPct.SignedString()},
		},
	})

	return doc.String()
}
