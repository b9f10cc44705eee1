package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/turtacn/LegalAid-Assistant/internal/application/assistant"
)

// exitWords end the interactive chat loop.
var exitWords = map[string]bool{
	"exit": true,
	"quit": true,
	"bye":  true,
}

// newChatCmd builds the interactive conversation command.
func newChatCmd(deps Dependencies, _ *rootOptions) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation with the assistant",
		Long:  "Starts a read-eval-print loop against the dialog engine.  Type\n\"exit\", \"quit\", or \"bye\" to end the conversation.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Legal Aid Assistant. Describe your situation, or type \"exit\" to leave.")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if exitWords[strings.ToLower(line)] {
					fmt.Fprintln(out, "Take care. Remember this was general information, not legal advice.")
					break
				}

				reply, err := deps.Assistant.Chat(cmd.Context(), assistant.ChatRequest{
					SessionID: sessionID,
					Message:   line,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s\n\n", reply.Message)
				for _, s := range reply.Suggestions {
					fmt.Fprintf(out, "  * %s\n", s)
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "session id to resume (default: a fresh session)")
	return cmd
}
