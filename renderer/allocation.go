package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rmonteiro/carteira"
)

// AllocationMarkdown renders the allocation breakdown with each group's share
// of the portfolio's current value.
func AllocationMarkdown(groups []carteira.AllocationGroup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Alocação")
	if len(groups) == 0 {
		doc.PlainText("Nenhum ativo cadastrado.")
		return doc.String()
	}

	total := carteira.M(0)
	for _, g := range groups {
		total = total.Add(g.TotalValue)
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		share := "-"
		if !total.IsZero() {
			share = fmt.Sprintf("%.1f%%", g.TotalValue.Decimal().Div(total.Decimal()).InexactFloat64()*100)
		}
		rows = append(rows, []string{
			g.Category.Label(),
			g.TotalValue.String(),
			share,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Categoria", "Valor", "Participação"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Total %s", total))

	return doc.String()
}
