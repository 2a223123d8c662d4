package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/investwise/investwise/renderer"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	user     string
	allGoals bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the financial report on screen" }
func (*showCmd) Usage() string {
	return `iw show [-user <name>] [-all-goals]

  Displays the financial summary for a user: financial goals first, then
  connected stock accounts.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User to report on. Defaults to $INVESTWISE_USER.")
	f.BoolVar(&c.allGoals, "all-goals", false, "Include every user's goals in the goals section (admin view).")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user := identity(c.user)

	a := newAssembler()
	assemble := a.Assemble
	if c.allGoals {
		assemble = a.AssembleGlobal
	}
	doc, err := assemble(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Print(renderer.Text(doc))
	return subcommands.ExitSuccess
}
