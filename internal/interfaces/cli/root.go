// Package cli wires the cobra command tree for the legalaid binary.  Every
// command runs against in-process services; no API server is required.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/LegalAid-Assistant/internal/application/assistant"
	appfeedback "github.com/turtacn/LegalAid-Assistant/internal/application/feedback"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Dependencies aggregates the services the commands run against.  Feedback
// may be nil when no database is configured; the feedback commands then
// refuse to run.
type Dependencies struct {
	Assistant *assistant.Service
	Feedback  *appfeedback.Service
	Logger    logging.Logger
}

// rootOptions holds the global flags shared by every command.
type rootOptions struct {
	output string
}

// NewRootCommand builds the root command with all subcommands attached.
func NewRootCommand(deps Dependencies) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "legalaid",
		Short:   "Legal information assistant for common legal questions",
		Long:    "legalaid analyzes plain-language descriptions of legal situations,\nclassifies them into a legal domain, and returns general legal\ninformation: rights, immediate steps, and free legal aid resources.\n\nIt provides legal information, not legal advice.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "output format (text, json)")

	cmd.AddCommand(
		newAskCmd(deps, opts),
		newChatCmd(deps, opts),
		newEntitiesCmd(deps, opts),
		newTranslateCmd(deps, opts),
		newFeedbackCmd(deps, opts),
	)

	return cmd
}

// printResult renders data according to the --output flag.  Text mode prints
// either the string itself or an indented JSON fallback for structured data.
func printResult(cmd *cobra.Command, opts *rootOptions, data interface{}) error {
	if strings.EqualFold(opts.output, "json") {
		return printJSON(cmd, data)
	}
	if s, ok := data.(string); ok {
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	}
	return printJSON(cmd, data)
}

func printJSON(cmd *cobra.Command, data interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// requireFeedback guards the feedback subcommands behind a configured
// repository.
func requireFeedback(deps Dependencies) error {
	if deps.Feedback == nil {
		return errors.New(errors.CodeServiceUnavailable,
			"feedback is not configured; enable the database in the configuration file")
	}
	return nil
}
