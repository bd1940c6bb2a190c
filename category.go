package carteira

import "fmt"

// Category is the closed classification of a position. Every position always
// carries a category; when classification is inconclusive the engine assigns
// Other rather than guessing.
type Category int

const (
	// Equity is a stock traded on B3, including BDRs.
	Equity Category = iota
	// Crypto is a crypto-currency holding, valued manually.
	Crypto
	// FixedIncome covers CDB, LCI/LCA, Tesouro Direto and similar products.
	FixedIncome
	// REIT is a Brazilian real-estate fund (FII, ticker suffix 11).
	REIT
	// Other is the explicit fallback for anything the rules cannot place.
	Other
)

// Categories lists all categories in display order.
func Categories() []Category {
	return []Category{Equity, Crypto, FixedIncome, REIT, Other}
}

func (c Category) String() string {
	switch c {
	case Equity:
		return "equity"
	case Crypto:
		return "crypto"
	case FixedIncome:
		return "fixed-income"
	case REIT:
		return "reit"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Label returns the human form used in reports.
func (c Category) Label() string {
	switch c {
	case Equity:
		return "Ações"
	case Crypto:
		return "Criptomoedas"
	case FixedIncome:
		return "Renda Fixa"
	case REIT:
		return "Fundos Imobiliários"
	case Other:
		return "Outros"
	default:
		return "?"
	}
}

// Quoted reports whether positions of this category are revalued from market
// quotes. Crypto and fixed income keep their manually entered values until
// edited.
func (c Category) Quoted() bool {
	switch c {
	case Equity, REIT:
		return true
	case Crypto, FixedIncome, Other:
		return false
	default:
		panic("carteira: unhandled category " + c.String())
	}
}

// ParseCategory parses a string previously produced by String.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, nil
		}
	}
	return Other, fmt.Errorf("unknown category: %q", s)
}

// MarshalText implements encoding.TextMarshaler so categories serialize as
// their stable string form in JSONL files.
func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
