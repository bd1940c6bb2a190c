// Package renderer turns engine values into the markdown reports printed by
// the CLI. It only formats; no computation happens here.
package renderer

import (
	"github.com/rmonteiro/carteira"
)

func formatQuantity(q carteira.Quantity) string {
	if q.IsZero() {
		return "-"
	}
	return q.String()
}

// categoryCell renders the category, flagging the explicit fallback so the
// user knows the engine did not recognize the asset.
func categoryCell(c carteira.Category) string {
	if c == carteira.Other {
		return c.Label() + " ⚠️"
	}
	return c.Label()
}
