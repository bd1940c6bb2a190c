package carteira

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Position is a single user-held asset record. Positions are owned
// exclusively by the Ledger; every accessor hands out copies.
type Position struct {
	ID             string
	AssetName      string // normalized, upper-case
	Category       Category
	Quantity       Quantity // zero when the user did not provide units
	UnitCost       Money    // amountInvested / quantity, zero without quantity
	AmountInvested Money    // cost basis, always > 0
	CurrentValue   Money
	PerformancePct Percent
}

// Draft is the raw user input of the add/edit form. Amounts are kept as
// typed so the engine can accept both "1.234,56" and "1234.56".
type Draft struct {
	AssetName string
	Quantity  string // optional
	Amount    string
}

// parseDecimalBR parses a numeric string accepting both Brazilian and
// international decimal separators. When both "." and "," appear, the last
// one is the decimal separator and the other marks thousands.
func parseDecimalBR(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	dot := strings.LastIndexByte(s, '.')
	comma := strings.LastIndexByte(s, ',')
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

// newPosition validates a draft and builds the position it describes.
// The id is left empty; the ledger assigns it on Add.
func newPosition(d Draft, known []KnownAsset) (Position, error) {
	name := Normalize(d.AssetName)
	if name == "" {
		return Position{}, &ValidationError{Field: "asset", Reason: "name is required"}
	}

	amount, err := parseDecimalBR(d.Amount)
	if err != nil {
		return Position{}, &ValidationError{Field: "amount", Reason: "not a number: " + d.Amount}
	}
	if !amount.IsPositive() {
		return Position{}, &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	invested := M(amount)

	p := Position{
		AssetName:      name,
		Category:       Classify(name, known),
		AmountInvested: invested,
		CurrentValue:   invested,
		PerformancePct: 0,
	}

	if strings.TrimSpace(d.Quantity) != "" {
		qty, err := parseDecimalBR(d.Quantity)
		if err != nil {
			return Position{}, &ValidationError{Field: "quantity", Reason: "not a number: " + d.Quantity}
		}
		if !qty.IsPositive() {
			return Position{}, &ValidationError{Field: "quantity", Reason: "must be greater than zero"}
		}
		p.Quantity = Q(qty)
		p.UnitCost = p.AmountInvested.Div(p.Quantity)
	}
	return p, nil
}
