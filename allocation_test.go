package carteira

import "testing"

func TestAggregate(t *testing.T) {
	positions := []Position{
		{Category: Equity, CurrentValue: M(100)},
		{Category: Equity, CurrentValue: M(50)},
		{Category: Crypto, CurrentValue: M(0)},
	}

	groups := Aggregate(positions)
	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1 (zero-value crypto excluded)", len(groups))
	}
	if groups[0].Category != Equity || !groups[0].TotalValue.Equal(M(150)) {
		t.Errorf("groups[0] = %+v, want Equity 150", groups[0])
	}
}

func TestAggregate_FirstOccurrenceOrder(t *testing.T) {
	positions := []Position{
		{Category: Crypto, CurrentValue: M(5)},
		{Category: Equity, CurrentValue: M(100)},
		{Category: Crypto, CurrentValue: M(10)},
		{Category: REIT, CurrentValue: M(30)},
	}

	groups := Aggregate(positions)
	want := []struct {
		category Category
		total    Money
	}{
		{Crypto, M(15)},
		{Equity, M(100)},
		{REIT, M(30)},
	}
	if len(groups) != len(want) {
		t.Fatalf("len(groups) = %d, want %d", len(groups), len(want))
	}
	for i, w := range want {
		if groups[i].Category != w.category || !groups[i].TotalValue.Equal(w.total) {
			t.Errorf("groups[%d] = %+v, want {%v %v}", i, groups[i], w.category, w.total)
		}
	}
}

func TestAggregate_Empty(t *testing.T) {
	if groups := Aggregate(nil); len(groups) != 0 {
		t.Errorf("Aggregate(nil) = %v, want empty", groups)
	}
}

func TestSummarize(t *testing.T) {
	positions := []Position{
		{AmountInvested: M(200), CurrentValue: M(255)},
		{AmountInvested: M(100), CurrentValue: M(95)},
	}

	s := Summarize(positions)
	if !s.Invested.Equal(M(300)) {
		t.Errorf("invested = %v, want 300", s.Invested)
	}
	if !s.CurrentValue.Equal(M(350)) {
		t.Errorf("currentValue = %v, want 350", s.CurrentValue)
	}
	if !s.GainLoss.Equal(M(50)) {
		t.Errorf("gainLoss = %v, want 50", s.GainLoss)
	}
	want := Percent(50.0 / 300.0 * 100)
	if !s.GainLossPct.Equal(want) {
		t.Errorf("gainLossPct = %v, want %v", s.GainLossPct, want)
	}
}

func TestSummarize_ZeroInvested(t *testing.T) {
	s := Summarize(nil)
	if !s.GainLossPct.Equal(0) {
		t.Errorf("gainLossPct on empty portfolio = %v, want 0", s.GainLossPct)
	}
}
