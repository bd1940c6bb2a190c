package cmd

import "github.com/google/subcommands"

// Commands lists every subcommand, in help order. The main package registers
// them all on its commander.
var Commands = []subcommands.Command{
	&addCmd{},
	&editCmd{},
	&removeCmd{},
	&listCmd{},
	&refreshCmd{},
	&allocationCmd{},
	&summaryCmd{},
	&searchCmd{},
	&classifyCmd{},
	&topicCmd{},
}
