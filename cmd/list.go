package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rmonteiro/carteira/renderer"
)

type listCmd struct {
	refresh bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the carteira" }
func (*listCmd) Usage() string {
	return `cart list [-refresh]

  Displays every position with its invested amount, current value and
  performance. With -refresh, quotes are fetched first; price failures are
  logged and the last known values shown.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Refresh quotes before listing")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading carteira %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	if c.refresh {
		// Best effort: a provider outage must not hide the carteira.
		refreshBestEffort(ctx, ledger, quoteProvider())
	}

	printMarkdown(renderer.PositionsMarkdown(ledger.List()))
	return subcommands.ExitSuccess
}
