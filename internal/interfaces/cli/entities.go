package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/LegalAid-Assistant/internal/domain/extract"
)

// newEntitiesCmd builds the standalone entity extraction command.
func newEntitiesCmd(_ Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "entities [text]",
		Short:   "Extract legal entities from a text",
		Example: `  legalaid entities "My employer Acme Corp fired me on January 5, 2024"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entities := extract.Extract(strings.Join(args, " "))

			if strings.EqualFold(opts.output, "json") {
				return printJSON(cmd, entities)
			}

			out := cmd.OutOrStdout()
			if len(entities) == 0 {
				fmt.Fprintln(out, "No entities found.")
				return nil
			}
			for _, e := range entities {
				fmt.Fprintf(out, "%-14s %s\n", e.Label, e.Text)
			}
			return nil
		},
	}
}
