package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/triplinehq/tripline/api"
	"github.com/triplinehq/tripline/plan"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the timeline and cost JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := plan.Open(logger)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error().Err(err).Msg("Failed to close store")
			}
		}()

		server := api.New(logger, store)
		addr := viper.GetString("listen_addr")

		errChan := make(chan error, 1)
		go func() {
			if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
		}()

		interruptChan := make(chan os.Signal, 1)
		signal.Notify(interruptChan, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errChan:
			return fmt.Errorf("server failed: %w", err)
		case sig := <-interruptChan:
			logger.Info().Str("signal", sig.String()).Msg("Shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
