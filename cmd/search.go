package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rmonteiro/carteira"
	"github.com/rmonteiro/carteira/brapi"
)

type searchCmd struct {
	limit int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search the B3 asset catalog" }
func (*searchCmd) Usage() string {
	return `cart search <term>

  Searches brapi's asset catalog by ticker or company name and prints
  ready-to-use 'cart add' commands for the results.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Maximum number of results")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	term := strings.Join(f.Args(), " ")

	client := brapi.NewClientAt(brapi.DefaultBaseURL, apiToken(), carteira.NewDailyCachingClient())
	results, err := client.Search(ctx, term, c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching assets: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(results) == 0 {
		fmt.Printf("No results found for %q.\n", term)
		return subcommands.ExitSuccess
	}

	fmt.Printf("Found %d result(s) for %q:\n\n", len(results), term)
	for _, a := range results {
		fmt.Printf("➡️   %s: %s (%s)\n", a.Symbol, a.DisplayName, a.Category.Label())
		fmt.Printf("    cart add %s -q <quantity> -v <amount>\n\n", a.Symbol)
	}
	return subcommands.ExitSuccess
}
