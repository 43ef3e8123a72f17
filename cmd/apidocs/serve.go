package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/widgetic/apidocs/internal/preview"
)

func newServeCmd(a *app) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the published document and its code samples for preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if address == "" {
				address = a.cfg.Preview.Address
			}
			if !a.targetExists() {
				slog.Warn("target does not exist yet", "target", a.cfg.Target)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := preview.New(a.cfg.Target)
			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start(address)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "listen address (default: preview.address)")
	return cmd
}
