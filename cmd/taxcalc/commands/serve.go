package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/tax-calculator/internal/api"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(a *app) *cobra.Command {
	var (
		port    string
		origins []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tax API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := api.DefaultServerConfig()
			cfg.Addr = ":" + resolvePort(port)
			if len(origins) > 0 {
				cfg.AllowedOrigins = origins
			}

			srv := api.NewServer(cfg, a.engine, a.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			if err := <-errCh; err != nil {
				a.logger.Warn("server stopped with error", zap.Error(err))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (default $PORT or 8080)")
	cmd.Flags().StringSliceVar(&origins, "allowed-origins", nil, "CORS origins (default any)")
	return cmd
}

// resolvePort prefers the flag, then $PORT, then 8080.
func resolvePort(flag string) string {
	if flag != "" {
		return flag
	}
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
