package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/deepgram/simplechat/internal/chatclient"
	"github.com/deepgram/simplechat/internal/config"
	"github.com/deepgram/simplechat/pkg/logger"
)

func newRootCmd() *cobra.Command {
	var (
		logLevel string
		envFile  string
	)

	root := &cobra.Command{
		Use:   "simplechat",
		Short: "Simple ChatGPT chat: backend API, terminal UI and one-shot client",
		Long: `simplechat sends a question to a ChatGPT backend and shows the answer.

  serve   run the backend (POST /api/chat, GET /)
  chat    interactive terminal client
  ask     send one message and print the reply
  token   mint a bearer token when JWT_SECRET is set`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(envFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}
			if logLevel == "" {
				logLevel = config.GetEnvOrDefault("LOG_LEVEL", "INFO")
			}
			logger.SetLevel(logLevel)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN or ERROR (or set LOG_LEVEL env)")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file loaded at startup")

	root.AddCommand(newServeCmd())
	root.AddCommand(newChatCmd())
	root.AddCommand(newAskCmd())
	root.AddCommand(newTokenCmd())
	return root
}

// clientFlags are shared by the commands that talk to the backend. Unset
// flags fall back to the environment.
type clientFlags struct {
	endpoint string
	timeout  time.Duration
}

func (f *clientFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.endpoint, "endpoint", "", "Chat endpoint (or set CHAT_ENDPOINT env, default "+config.DefaultChatEndpoint+")")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Request timeout, 0 waits indefinitely (or set CHAT_TIMEOUT env)")
}

func (f *clientFlags) newClient(cmd *cobra.Command) *chatclient.Client {
	endpoint := f.endpoint
	if endpoint == "" {
		endpoint = config.GetChatEndpoint()
	}
	timeout := f.timeout
	if !cmd.Flags().Changed("timeout") {
		timeout = config.GetChatTimeout()
	}

	return chatclient.NewClient(endpoint,
		chatclient.WithTimeout(timeout),
		chatclient.WithToken(config.GetChatToken()),
	)
}
