package carteira

// Revaluation is the result of applying fresh quotes to a set of positions.
// Positions holds every input position, updated or not, in input order;
// Touched lists the ids whose valuation actually changed hands.
type Revaluation struct {
	Positions []Position
	Touched   []string
}

// Revalue recomputes currentValue and performance for positions of quoted
// categories (equity and REITs) that have a positive quantity and a fresh
// quote for their asset name: currentValue = quantity × price. Everything
// else passes through untouched: crypto and fixed income keep their manually
// entered values until edited, and a missing quote for one symbol never
// blocks revaluation of the others. Revalue is a total function over its
// inputs and mutates nothing it is given.
func Revalue(positions []Position, quotes map[string]Quote) Revaluation {
	rv := Revaluation{Positions: make([]Position, len(positions))}
	copy(rv.Positions, positions)

	for i, p := range rv.Positions {
		switch p.Category {
		case Equity, REIT:
			// quoted below
		case Crypto, FixedIncome, Other:
			continue
		default:
			panic("carteira: unhandled category " + p.Category.String())
		}
		q, ok := quotes[p.AssetName]
		if !ok || !p.Quantity.IsPositive() {
			continue
		}

		p.CurrentValue = M(q.Price).Mul(p.Quantity)
		p.PerformancePct = Gain(p.CurrentValue, p.AmountInvested)
		rv.Positions[i] = p
		rv.Touched = append(rv.Touched, p.ID)
	}
	return rv
}
