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

type classifyCmd struct {
	offline bool
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "show how an asset name would be classified" }
func (*classifyCmd) Usage() string {
	return `cart classify <asset name>

  Previews the category 'cart add' would assign to a name, and which rule
  decided it. Nothing is added to the carteira.
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Skip the asset catalog, use name heuristics only")
}

func (c *classifyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: an asset name is required.")
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args(), " ")

	var known []carteira.KnownAsset
	if !c.offline {
		known = knownAssets(ctx, name)
	}

	category, rule := carteira.Explain(name, known)
	fmt.Printf("%s: %s (rule: %s)\n", carteira.Normalize(name), category.Label(), rule)
	if category == carteira.Other {
		fmt.Println("⚠️  no rule matched; this asset would not be revalued by quotes.")
	}
	return subcommands.ExitSuccess
}
