package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/rmonteiro/carteira"
)

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "fetch quotes and revalue the carteira" }
func (*refreshCmd) Usage() string {
	return `cart refresh

  Fetches current quotes for every quoted position (ações and FIIs via
  brapi) and recomputes current values. Crypto spot prices are shown for
  reference but never change a position's value.

  A symbol whose quote cannot be fetched keeps its last value.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {}

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading carteira %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	touched, err := refreshQuotes(ctx, ledger, quoteProvider())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving revalued positions: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Revalued %d of %d position(s).\n", len(touched), ledger.Len())

	// Reference spot prices, valuation untouched.
	for _, p := range ledger.List() {
		if p.Category != carteira.Crypto {
			continue
		}
		spot, err := carteira.CryptoSpotBRL(p.AssetName)
		if err != nil {
			log.Printf("no spot price for %s: %v", p.AssetName, err)
			continue
		}
		fmt.Printf("%s spot: %s (%s over 24h)\n", spot.Symbol, carteira.M(spot.Price), spot.ChangePercent.SignedString())
	}
	return subcommands.ExitSuccess
}

// refreshQuotes fetches quotes for the ledger's quoted symbols and applies
// them. Fetch failures degrade to cached or last known values; only a
// persistence failure surfaces as an error.
func refreshQuotes(ctx context.Context, ledger *carteira.Ledger, provider carteira.QuoteProvider) ([]string, error) {
	symbols := ledger.QuotedSymbols()
	if len(symbols) == 0 {
		return nil, nil
	}

	cache := carteira.NewQuoteCache(carteira.DefaultQuoteTTL, nil)
	quotes := cache.GetOrFetchMany(ctx, symbols, provider)
	return ledger.ApplyQuotes(ctx, quotes)
}

// refreshBestEffort is the -refresh flag of the display commands: the report
// must still print, so a persistence failure is logged rather than fatal.
func refreshBestEffort(ctx context.Context, ledger *carteira.Ledger, provider carteira.QuoteProvider) {
	if _, err := refreshQuotes(ctx, ledger, provider); err != nil {
		log.Printf("warning: could not persist revalued positions: %v", err)
	}
}
