package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/LegalAid-Assistant/internal/application/assistant"
)

// newTranslateCmd builds the translation command.
func newTranslateCmd(deps Dependencies, opts *rootOptions) *cobra.Command {
	var (
		from   string
		to     string
		detect bool
	)

	cmd := &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate legal vocabulary between supported languages",
		Example: `  legalaid translate --from en --to es "you have the right to dispute the eviction"
  legalaid translate --detect "tengo una pregunta legal"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			if detect {
				resp, err := deps.Assistant.DetectLanguage(text)
				if err != nil {
					return err
				}
				if strings.EqualFold(opts.output, "json") {
					return printJSON(cmd, resp)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", resp.Language, resp.Code)
				return nil
			}

			resp, err := deps.Assistant.Translate(cmd.Context(), assistant.TranslateRequest{
				Text:       text,
				SourceLang: from,
				TargetLang: to,
			})
			if err != nil {
				return err
			}
			if strings.EqualFold(opts.output, "json") {
				return printJSON(cmd, resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "en", "source language code")
	cmd.Flags().StringVar(&to, "to", "es", "target language code")
	cmd.Flags().BoolVar(&detect, "detect", false, "detect the language instead of translating")
	return cmd
}
