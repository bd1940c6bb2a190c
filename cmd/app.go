// Package cmd implements the CLI application to manage a carteira.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/rmonteiro/carteira"
	"github.com/rmonteiro/carteira/brapi"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "positions.jsonl", "Path to the positions file (JSONL format)")
var knownAssetsFile = flag.String("known-assets", "", "Optional JSON file with a local asset catalog")
var brapiToken = flag.String("brapi-token", "", "brapi.dev API token (defaults to $BRAPI_TOKEN)")

// apiToken resolves the brapi token, flag over environment.
func apiToken() string {
	if *brapiToken != "" {
		return *brapiToken
	}
	return brapi.Token()
}

// loadLedger opens the ledger backed by the app positions file. A missing
// file is an empty carteira, not an error.
func loadLedger(ctx context.Context) (*carteira.Ledger, error) {
	return carteira.LoadLedger(ctx, carteira.NewFileStore(*ledgerFile))
}

// quoteProvider returns the live quote source for B3 symbols.
func quoteProvider() carteira.QuoteProvider {
	return brapi.NewClient(apiToken())
}

// knownAssets looks the name up in the local catalog and the brapi one, local
// entries first so a user override beats the API. The catalogs are best
// effort: offline or rate-limited, classification falls back to the name
// heuristics alone.
func knownAssets(ctx context.Context, name string) []carteira.KnownAsset {
	assets := localKnownAssets()

	client := brapi.NewClientAt(brapi.DefaultBaseURL, apiToken(), carteira.NewDailyCachingClient())
	found, err := client.Search(ctx, name, 10)
	if err != nil {
		log.Printf("warning: asset catalog unavailable, classifying by name only: %v", err)
	}
	return append(assets, found...)
}

// localKnownAssets reads the -known-assets file, a JSON array of
// {symbol, displayName, category, sector} objects.
func localKnownAssets() []carteira.KnownAsset {
	if *knownAssetsFile == "" {
		return nil
	}
	content, err := os.ReadFile(*knownAssetsFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, known-assets file %q does not exist, ignoring it", *knownAssetsFile)
		return nil
	}
	if err != nil {
		log.Printf("warning: cannot read known-assets file: %v", err)
		return nil
	}
	var assets []struct {
		Symbol      string            `json:"symbol"`
		DisplayName string            `json:"displayName"`
		Category    carteira.Category `json:"category"`
		Sector      string            `json:"sector"`
	}
	if err := json.Unmarshal(content, &assets); err != nil {
		log.Printf("warning: cannot parse known-assets file: %v", err)
		return nil
	}
	out := make([]carteira.KnownAsset, 0, len(assets))
	for _, a := range assets {
		out = append(out, carteira.KnownAsset{
			Symbol:      a.Symbol,
			DisplayName: a.DisplayName,
			Category:    a.Category,
			Sector:      a.Sector,
		})
	}
	return out
}
