package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a position from the carteira" }
func (*removeCmd) Usage() string {
	return `cart remove <id>...

  Removes positions by id. Removing an id that does not exist is not an
  error.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one position id is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading carteira %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	for _, id := range f.Args() {
		if err := ledger.Remove(ctx, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing %q: %v\n", id, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Removed. %d position(s) remain.\n", ledger.Len())
	return subcommands.ExitSuccess
}
