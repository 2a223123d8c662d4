package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/investwise/investwise/renderer"
)

// previewCmd holds the flags for the 'preview' subcommand.
type previewCmd struct {
	user string
}

func (*previewCmd) Name() string     { return "preview" }
func (*previewCmd) Synopsis() string { return "preview the exported report document in the terminal" }
func (*previewCmd) Usage() string {
	return `iw preview [-user <name>]

  Renders the report document exactly as 'export' would write it, but to
  the terminal instead of a file.
`
}

func (c *previewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User to report on. Defaults to $INVESTWISE_USER.")
}

func (c *previewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user := identity(c.user)

	doc, err := newAssembler().Assemble(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.Document(doc, user, time.Now()))
	return subcommands.ExitSuccess
}
