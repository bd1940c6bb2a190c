package carteira

import "fmt"

// Percent is a signed percentage, e.g. 27.5 for +27.5%.
type Percent float64

// Gain computes the percentage gain of current over invested,
// (current - invested) / invested × 100. It returns 0 when invested is zero,
// guarding the division.
func Gain(current, invested Money) Percent {
	if invested.IsZero() {
		return 0
	}
	ratio := current.Sub(invested).Decimal().Div(invested.Decimal())
	return Percent(ratio.InexactFloat64() * 100)
}

// Equal compares with a small tolerance: percentages come out of inexact
// float conversion at the display boundary.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString renders with an explicit sign, and "-" for zero.
func (p Percent) SignedString() string {
	s := fmt.Sprintf("%+.2f%%", float64(p))
	if s == "+0.00%" {
		return "-"
	}
	return s
}
