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

type summaryCmd struct {
	refresh bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the carteira totals" }
func (*summaryCmd) Usage() string {
	return `cart summary [-refresh]

  Displays total invested, total current value and overall performance.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Refresh quotes first")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading carteira %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	if c.refresh {
		refreshBestEffort(ctx, ledger, quoteProvider())
	}

	printMarkdown(renderer.SummaryMarkdown(carteira.Summarize(ledger.List())))
	return subcommands.ExitSuccess
}
