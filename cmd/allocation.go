package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rmonteiro/carteira"
	"github.com/rmonteiro/carteira/renderer"
)

type allocationCmd struct {
	refresh bool
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display current value grouped by category" }
func (*allocationCmd) Usage() string {
	return `cart allocation [-refresh]

  Sums current values per category, in the order categories first appear in
  the carteira, with each category's share of the total.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Refresh quotes first")
}

func (c *allocationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading carteira %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	if c.refresh {
		refreshBestEffort(ctx, ledger, quoteProvider())
	}

	printMarkdown(renderer.AllocationMarkdown(carteira.Aggregate(ledger.List())))
	return subcommands.ExitSuccess
}
