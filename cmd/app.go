// Package cmd implements the CLI application to display and export
// financial reports.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/investwise/investwise"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&showCmd{}, "reports")
	c.Register(&previewCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&insightsCmd{}, "insights")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var goalsFile = flag.String("goals-file", "goals.jsonl", "Path to the goals file (JSONL format)")
var accountsFile = flag.String("accounts-file", "stock_accounts.txt", "Path to the linked accounts file (comma separated table)")

// newAssembler wires the stores from the app flags.
func newAssembler() *investwise.Assembler {
	return &investwise.Assembler{
		Goals:    investwise.NewGoalStore(*goalsFile),
		Accounts: investwise.NewAccountStore(*accountsFile),
	}
}

// identity resolves the current user from the command flag, falling back
// to the INVESTWISE_USER environment variable. An empty result means no
// identity is available and the command must refuse to proceed.
func identity(user string) string {
	if user != "" {
		return user
	}
	return os.Getenv("INVESTWISE_USER")
}
