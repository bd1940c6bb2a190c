package carteira

// AllocationGroup is the total current value held in one category.
type AllocationGroup struct {
	Category   Category
	TotalValue Money
}

// Aggregate groups positions by category and sums their current values,
// excluding groups that end up at zero. Group order is the insertion order
// of each category's first occurrence, stable for display; callers sort
// explicitly if they want a by-value ranking.
func Aggregate(positions []Position) []AllocationGroup {
	offsets := make(map[Category]int)
	var groups []AllocationGroup
	for _, p := range positions {
		i, ok := offsets[p.Category]
		if !ok {
			i = len(groups)
			offsets[p.Category] = i
			groups = append(groups, AllocationGroup{Category: p.Category})
		}
		groups[i].TotalValue = groups[i].TotalValue.Add(p.CurrentValue)
	}

	kept := groups[:0]
	for _, g := range groups {
		if !g.TotalValue.IsZero() {
			kept = append(kept, g)
		}
	}
	return kept
}

// Summary is the aggregate view of the whole portfolio.
type Summary struct {
	Invested     Money
	CurrentValue Money
	GainLoss     Money
	GainLossPct  Percent
}

// Summarize reduces positions to portfolio-level totals, with the usual
// divide-by-zero guard on the percentage.
func Summarize(positions []Position) Summary {
	var s Summary
	for _, p := range positions {
		s.Invested = s.Invested.Add(p.AmountInvested)
		s.CurrentValue = s.CurrentValue.Add(p.CurrentValue)
	}
	s.GainLoss = s.CurrentValue.Sub(s.Invested)
	s.GainLossPct = Gain(s.CurrentValue, s.Invested)
	return s
}
