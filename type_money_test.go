package carteira

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{in: M(0), want: "R$0,00"},
		{in: M(1), want: "R$1,00"},
		{in: M(1234.56), want: "R$1.234,56"},
		{in: M(-42.5), want: "-R$42,50"},
		{in: M(0.005), want: "R$0,01"}, // rounds to centavos for display
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Money(%v).String() = %q, want %q", tc.in.Decimal(), got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(10).SignedString(); got != "+R$10,00" {
		t.Errorf("SignedString = %q, want +R$10,00", got)
	}
	if got := M(0).SignedString(); got != "-" {
		t.Errorf("SignedString of zero = %q, want -", got)
	}
}

func TestGain(t *testing.T) {
	testCases := []struct {
		name     string
		current  Money
		invested Money
		want     Percent
	}{
		{name: "gain", current: M(255), invested: M(200), want: 27.5},
		{name: "loss", current: M(95), invested: M(100), want: -5},
		{name: "flat", current: M(100), invested: M(100), want: 0},
		{name: "zero invested", current: M(100), invested: M(0), want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Gain(tc.current, tc.invested); !got.Equal(tc.want) {
				t.Errorf("Gain(%v, %v) = %v, want %v", tc.current, tc.invested, got, tc.want)
			}
		})
	}
}
