package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/deepgram/simplechat/internal/chatclient"
	"github.com/deepgram/simplechat/internal/ui"
	"github.com/deepgram/simplechat/pkg/logger"
)

func newChatCmd() *cobra.Command {
	var (
		flags    clientFlags
		markdown bool
		logFile  string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive terminal client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// logging to the terminal would tear the UI apart
			restore, err := redirectLogs(logFile)
			if err != nil {
				return err
			}
			defer restore()

			client := flags.newClient(cmd)
			opts := ui.Options{
				Sender:     client,
				BackendURL: chatclient.BackendURL(client.Endpoint()),
				Examples:   chatclient.DefaultExamples,
			}
			if markdown {
				opts.MarkdownStyle = "auto"
			}

			_, err = tea.NewProgram(ui.New(opts), tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render replies as markdown")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of discarding them")
	return cmd
}

// redirectLogs points the logger at path, or discards logs when path is empty
func redirectLogs(path string) (func(), error) {
	if path == "" {
		return logger.SetOutput(io.Discard), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	restore := logger.SetOutput(f)
	return func() {
		restore()
		f.Close()
	}, nil
}
