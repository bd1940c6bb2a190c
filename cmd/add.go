package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rmonteiro/carteira"
)

type addCmd struct {
	quantity string
	amount   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an asset to the carteira" }
func (*addCmd) Usage() string {
	return `cart add <asset name> -v <amount> [-q <quantity>]

  Adds an asset. The category is deduced from the name (see 'cart topic
  classificacao'); use 'cart classify' first to preview it. Amounts accept
  both decimal separators: -v 3.500,00 and -v 3500.00 are the same value.

  Quantity is optional. Without it the asset is valued at cost and never
  revalued by quotes.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.quantity, "q", "", "Quantity of units held (optional)")
	f.StringVar(&c.amount, "v", "", "Total amount invested (required)")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: an asset name is required.")
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args(), " ")

	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading carteira %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	draft := carteira.Draft{AssetName: name, Quantity: c.quantity, Amount: c.amount}
	p, err := ledger.Add(ctx, draft, knownAssets(ctx, name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Added %s (%s) invested %s, id %s\n", p.AssetName, p.Category.Label(), p.AmountInvested, p.ID)
	if p.Category == carteira.Other {
		fmt.Println("⚠️  could not classify this asset; it will not be revalued by quotes.")
	}
	return subcommands.ExitSuccess
}
