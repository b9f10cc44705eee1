package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newFeedbackCmd builds the feedback command group.
func newFeedbackCmd(deps Dependencies, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Inspect collected user feedback",
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate feedback statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFeedback(deps); err != nil {
				return err
			}
			stats, err := deps.Feedback.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if !strings.EqualFold(opts.output, "json") {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Total feedback:  %d\n", stats.Total)
				fmt.Fprintf(out, "Average rating:  %v/5\n", stats.AverageRating)
				for domain, count := range stats.DomainDistribution {
					fmt.Fprintf(out, "  %-15s %d\n", domain, count)
				}
				return nil
			}
			return printJSON(cmd, stats)
		},
	}

	suggestionsCmd := &cobra.Command{
		Use:   "suggestions",
		Short: "Show improvement suggestions derived from feedback",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFeedback(deps); err != nil {
				return err
			}
			suggestions, err := deps.Feedback.Suggestions(cmd.Context())
			if err != nil {
				return err
			}
			if strings.EqualFold(opts.output, "json") {
				return printJSON(cmd, suggestions)
			}
			for _, s := range suggestions {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", s)
			}
			return nil
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Render the plain-text feedback report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFeedback(deps); err != nil {
				return err
			}
			report, err := deps.Feedback.Report(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.AddCommand(statsCmd, suggestionsCmd, reportCmd)
	return cmd
}
