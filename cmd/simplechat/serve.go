package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/deepgram/simplechat/internal/api/handlers"
	"github.com/deepgram/simplechat/internal/config"
	"github.com/deepgram/simplechat/internal/services"
	"github.com/deepgram/simplechat/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chat backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = config.GetListenAddr()
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (or set LISTEN_ADDR env, default localhost:8000)")
	return cmd
}

func setupRouter(svcs *services.Services) http.Handler {
	return handlers.NewHandler(svcs.GetChatService(), svcs, config.GetAllowedOrigins())
}

func runServer(ctx context.Context, addr string) error {
	svcs := services.InitializeServices()
	defer func() {
		if err := svcs.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close services")
		}
	}()

	server := &http.Server{
		Addr:              addr,
		Handler:           setupRouter(svcs),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		logger.Fatal(logger.APP, "Server failed on %s: %v", addr, err)
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
