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

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	user      string
	outputDir string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the financial report as a document file" }
func (*exportCmd) Usage() string {
	return `iw export [-user <name>] [-o <dir>]

  Writes the financial report to <user>_Financial_Report.md in the output
  directory. A previous report for the same user is overwritten.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User to report on. Defaults to $INVESTWISE_USER.")
	f.StringVar(&c.outputDir, "o", ".", "Output directory for the generated report")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user := identity(c.user)

	doc, err := newAssembler().Assemble(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	// The export is only worth a file when there is at least one goal to
	// report on. The guard lives here, not in the stores or the renderer.
	if doc.Sections[0].Empty {
		fmt.Println("No goals found to generate a report.")
		return subcommands.ExitSuccess
	}

	path, err := renderer.WriteDocument(c.outputDir, doc, user, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Financial report saved as %s\n", path)
	return subcommands.ExitSuccess
}
