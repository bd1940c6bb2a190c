package carteira

import (
	"regexp"
	"strings"
)

// KnownAsset is a reference record from an external catalog (ticker list,
// search API). It is read-only for the engine and only improves
// classification and autocomplete; its absence never blocks anything.
type KnownAsset struct {
	Symbol      string
	DisplayName string
	Category    Category
	Sector      string
}

// Rule is one step of the classification heuristic. Rules are evaluated in
// order, first match wins, so the slice below is the single source of truth
// for precedence.
type Rule struct {
	Name  string
	Match func(input string) (Category, bool)
}

var (
	b3Pattern  = regexp.MustCompile(`^[A-Z]{4}[0-9]{1,2}$`)
	bdrPattern = regexp.MustCompile(`^[A-Z]{4}(34|35)$`)
)

// cryptoKeywords lists major coins by ticker and by full name. Substring
// matching mirrors how users type informal entries such as "bitcoin (btc)".
var cryptoKeywords = []string{
	"BTC", "BITCOIN", "ETH", "ETHEREUM", "BNB", "BINANCE COIN",
	"SOL", "SOLANA", "XRP", "RIPPLE", "ADA", "CARDANO",
	"DOGE", "DOGECOIN", "SHIB", "SHIBA INU", "AVAX", "AVALANCHE",
	"DOT", "POLKADOT", "MATIC", "POLYGON", "LTC", "LITECOIN",
	"LINK", "CHAINLINK", "ATOM", "COSMOS", "XLM", "STELLAR",
	"TRX", "TRON", "NEAR", "ALGO", "ALGORAND", "VET", "VECHAIN",
	"FIL", "FILECOIN", "ICP", "HBAR", "HEDERA", "APT", "APTOS",
	"ARB", "ARBITRUM", "OPTIMISM", "TON", "TONCOIN", "SUI",
	"PEPE", "AAVE", "UNISWAP", "CAKE", "PANCAKESWAP",
	"USDT", "TETHER", "USDC", "BUSD", "DAI",
	"FTM", "FANTOM", "CRO", "CRONOS", "XMR", "MONERO",
	"ETC", "ETHEREUM CLASSIC", "EGLD", "KSM", "KUSAMA",
}

// fixedIncomeKeywords lists the Portuguese names of common fixed-income
// products and their index references.
var fixedIncomeKeywords = []string{
	"CDB", "LCI", "LCA", "CRI", "CRA", "RDB", "LC",
	"TESOURO", "TESOURO DIRETO", "SELIC", "IPCA", "PREFIXADO",
	"POS-FIXADO", "PÓS-FIXADO", "CDI", "DEBENTURE", "DEBÊNTURE",
	"POUPANCA", "POUPANÇA", "RENDA FIXA", "LTN", "LFT", "NTN-B",
}

// rules is the ordered heuristic applied after the known-asset lookup.
// Order matters: the B3 pattern would swallow BDR tickers, and the keyword
// rules are deliberately last because they match on substrings.
var rules = []Rule{
	{
		Name: "crypto keyword",
		Match: func(in string) (Category, bool) {
			for _, kw := range cryptoKeywords {
				if in == kw || strings.Contains(in, kw) {
					return Crypto, true
				}
			}
			return Other, false
		},
	},
	{
		Name: "bdr ticker",
		Match: func(in string) (Category, bool) {
			if bdrPattern.MatchString(in) {
				return Equity, true
			}
			return Other, false
		},
	},
	{
		Name: "b3 ticker",
		Match: func(in string) (Category, bool) {
			if !b3Pattern.MatchString(in) {
				return Other, false
			}
			if strings.HasSuffix(in, "11") {
				return REIT, true
			}
			// The final digit encodes the share type: 3 ON, 4 PN, 5 PNA, 6 PNB.
			last := in[len(in)-1]
			if last >= '3' && last <= '6' {
				return Equity, true
			}
			// Digits 1-2 (rights and receipts) fall through to later rules.
			return Other, false
		},
	},
	{
		Name: "fixed-income keyword",
		Match: func(in string) (Category, bool) {
			for _, kw := range fixedIncomeKeywords {
				if in == kw || strings.Contains(in, kw) {
					return FixedIncome, true
				}
			}
			return Other, false
		},
	},
}

// Normalize returns the canonical form of a user-typed asset name: trimmed
// and upper-cased. Positions always store the normalized form.
func Normalize(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// Classify maps a free-text ticker or asset name to a category.
//
// A known-asset match (exact or substring, either direction) takes priority
// over every heuristic rule. Inputs shorter than two characters return Other
// without any lookup: matching on one-letter prefixes produces only noise.
// Classify is pure; the same input and catalog snapshot always yield the
// same category.
func Classify(input string, known []KnownAsset) Category {
	c, _ := Explain(input, known)
	return c
}

// Explain classifies like Classify and also names the rule that decided,
// which the CLI uses to show the user why a category was picked. The rule
// name is "known asset" for catalog hits and "fallback" when nothing
// matched.
func Explain(input string, known []KnownAsset) (Category, string) {
	in := Normalize(input)
	if len(in) < 2 {
		return Other, "fallback"
	}

	for _, asset := range known {
		symbol := Normalize(asset.Symbol)
		if symbol == "" {
			continue
		}
		if in == symbol || strings.Contains(in, symbol) || strings.Contains(symbol, in) {
			return asset.Category, "known asset"
		}
	}

	for _, rule := range rules {
		if c, ok := rule.Match(in); ok {
			return c, rule.Name
		}
	}
	return Other, "fallback"
}
