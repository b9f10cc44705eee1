package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/LegalAid-Assistant/internal/application/assistant"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
)

// newAskCmd builds the one-shot analysis command.
func newAskCmd(deps Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Analyze a legal question and print general legal information",
		Example: `  legalaid ask "I was fired from my job without any warning"
  legalaid ask -o json "my landlord is evicting me"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return errors.Validation("question must not be empty")
			}

			resp := deps.Assistant.Analyze(cmd.Context(), assistant.AnalyzeRequest{Text: question})

			if strings.EqualFold(opts.output, "json") {
				return printJSON(cmd, resp)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Domain: %s\n\n", resp.Domain)
			fmt.Fprintln(out, resp.Advice)
			if len(resp.Resources) > 0 {
				fmt.Fprintln(out, "\nResources:")
				for _, r := range resp.Resources {
					fmt.Fprintf(out, "  - %s: %s\n", r.Name, r.Description)
				}
			}
			return nil
		},
	}
}
