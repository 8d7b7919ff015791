package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepgram/simplechat/internal/chatclient"
	"github.com/deepgram/simplechat/pkg/logger"
)

func newAskCmd() *cobra.Command {
	var (
		flags   clientFlags
		html    bool
		example int
	)

	cmd := &cobra.Command{
		Use:   "ask [message...]",
		Short: "Send one message and print the reply",
		Long: `Sends the message to the backend and prints the reply. With --html the
output is the fragment the browser page would show. --example N sends
preset prompt N instead of a message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := flags.newClient(cmd)
			backend := chatclient.BackendURL(client.Endpoint())

			cc := chatclient.New(client)
			dispose := cc.Subscribe(func(m chatclient.Model) {
				logger.Debug(logger.CLIENT, "state=%s trigger=%q", m.State, m.TriggerLabel())
			})
			defer dispose()

			input := strings.Join(args, " ")
			if example > 0 {
				if example > len(chatclient.DefaultExamples) {
					return fmt.Errorf("example must be between 1 and %d", len(chatclient.DefaultExamples))
				}
				cc.FillExample(chatclient.DefaultExamples[example-1])
				input = cc.Model().Input
			}

			m := cc.SendMessage(cmd.Context(), input)
			out := cmd.OutOrStdout()

			switch m.State {
			case chatclient.Success:
				if html {
					fmt.Fprintln(out, chatclient.Render(m, chatclient.HTMLRenderer{BackendURL: backend}))
				} else {
					fmt.Fprintln(out, m.Reply)
				}
				return nil

			case chatclient.Error:
				if html {
					fmt.Fprintln(out, chatclient.Render(m, chatclient.HTMLRenderer{BackendURL: backend}))
				}
				return fmt.Errorf("%w (%s)", m.Failure, chatclient.BackendHint(backend))

			default:
				return fmt.Errorf("%s: %w", m.Notice, chatclient.ErrEmptyInput)
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&html, "html", false, "Print the HTML fragment instead of plain text")
	cmd.Flags().IntVar(&example, "example", 0, "Send preset example prompt N (1-based)")
	return cmd
}
