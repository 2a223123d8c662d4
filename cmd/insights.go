package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/investwise/investwise/renderer"
)

// insightsCmd holds the flags for the 'insights' subcommand.
type insightsCmd struct {
	user  string
	model string
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "ask Gemini for a commentary on the report" }
func (*insightsCmd) Usage() string {
	return `iw insights [-user <name>] [-model <model>]

  Sends the assembled report to Gemini and prints its commentary. The
  report figures are passed through as-is; nothing is computed locally.
  Requires Gemini API credentials in the environment.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User to report on. Defaults to $INVESTWISE_USER.")
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use")
}

const insightsPreamble = `You are a financial assistant. Below is a user's financial
summary: their goals and their connected stock accounts. Comment briefly on the
goals and how the connected accounts could help reach them. Do not invent
figures that are not in the summary.`

func (c *insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user := identity(c.user)

	doc, err := newAssembler().Assemble(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	chat, err := client.Chats.Create(ctx, c.model, nil, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating chat session:", err)
		return subcommands.ExitFailure
	}

	prompt := insightsPreamble + "\n\n" + renderer.Text(doc)
	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking for insights:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: empty response from model")
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}
