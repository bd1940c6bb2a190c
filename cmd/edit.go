package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rmonteiro/carteira"
)

type editCmd struct {
	quantity string
	amount   string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change the quantity and invested amount of a position" }
func (*editCmd) Usage() string {
	return `cart edit <id> -v <amount> [-q <quantity>]

  Replaces the quantity and invested amount of a position. The current value
  resets to the new invested amount until the next quote refresh. Name and
  category do not change.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.quantity, "q", "", "New quantity of units held (optional)")
	f.StringVar(&c.amount, "v", "", "New total amount invested (required)")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a position id is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading carteira %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	draft := carteira.Draft{Quantity: c.quantity, Amount: c.amount}
	p, err := ledger.Edit(ctx, f.Arg(0), draft)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Updated %s: invested %s\n", p.AssetName, p.AmountInvested)
	return subcommands.ExitSuccess
}
