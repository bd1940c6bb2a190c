package carteira

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Best-effort crypto spot prices from the CoinGecko public API. These never
// feed the quote-driven valuation pass (crypto positions keep their manual
// values); the refresh command shows them for reference only.

// coinGeckoIDs maps the tickers users actually type to CoinGecko coin ids.
var coinGeckoIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"BNB":  "binancecoin",
	"SOL":  "solana",
	"XRP":  "ripple",
	"ADA":  "cardano",
	"DOGE": "dogecoin",
	"DOT":  "polkadot",
	"LTC":  "litecoin",
	"LINK": "chainlink",
	"AVAX": "avalanche-2",
	"USDT": "tether",
	"USDC": "usd-coin",
}

// CryptoSpotBRL fetches the current BRL spot price for a crypto ticker such
// as "BTC" or "BITCOIN". It returns an error for coins it has no id for.
func CryptoSpotBRL(symbol string) (Quote, error) {
	ticker := Normalize(symbol)
	id, ok := coinGeckoIDs[ticker]
	if !ok {
		// Full names work too: "BITCOIN" is a valid CoinGecko id once lowered.
		id = strings.ToLower(ticker)
	}

	addr := fmt.Sprintf(
		"https://api.coingecko.com/api/v3/simple/price?ids=%s&vs_currencies=brl&include_24hr_change=true",
		url.QueryEscape(id))

	var jobj any
	if err := jwget(&http.Client{Timeout: 10 * time.Second}, addr, &jobj); err != nil {
		return Quote{}, fmt.Errorf("error retrieving spot price for %q: %w", symbol, err)
	}

	price, err := jsonFloat(jobj, fmt.Sprintf("$[%q].brl", id))
	if err != nil {
		return Quote{}, fmt.Errorf("no BRL spot price for %q: %w", symbol, err)
	}
	// The 24h change is optional on thin markets; zero is fine.
	change, _ := jsonFloat(jobj, fmt.Sprintf("$[%q].brl_24h_change", id))

	return Quote{
		Symbol:        ticker,
		Price:         decimal.NewFromFloat(price),
		ChangePercent: Percent(change),
		AsOf:          time.Now(),
	}, nil
}

// jsonFloat extracts a float from a decoded JSON value by jsonpath.
func jsonFloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, err
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%q is not a number: %v", path, jval)
	}
	return val, nil
}
