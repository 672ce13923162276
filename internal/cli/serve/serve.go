// Package serve implements the 'bqquery serve' command.
package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zxc72608/bigquery/internal/cli/helpers"
	"github.com/zxc72608/bigquery/internal/config"
	"github.com/zxc72608/bigquery/internal/constants"
	cerrors "github.com/zxc72608/bigquery/internal/errors"
	"github.com/zxc72608/bigquery/internal/httpapi"
	"github.com/zxc72608/bigquery/internal/logging"
	"github.com/zxc72608/bigquery/internal/warehouse"
	"github.com/zxc72608/bigquery/pkg/version"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP query service",
		Long: `Starts the HTTP query service.

Endpoints:
  GET  /            Query form
  GET  /health      Liveness check
  POST /api/query   Filter query, e.g. {"type": "employee", "branch_id": "2"}

Configuration is read from --config, $BQQUERY_CONFIG or ~/.bqquery/config.yaml,
then overridden by BQQUERY_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := helpers.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			logger := logging.New(cfg.Log)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go func() {
				sigChan := make(chan os.Signal, 1)
				signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
				defer signal.Stop(sigChan)

				select {
				case sig := <-sigChan:
					logger.Info().Str("signal", sig.String()).Msg("Shutting down")
					cancel()
				case <-ctx.Done():
				}
			}()

			return Run(ctx, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&host, "host", constants.DefaultHost, "Listen host (overrides server.host)")
	cmd.Flags().IntVarP(&port, "port", "p", constants.DefaultPort, "Listen port (overrides server.port)")

	return cmd
}

// Run opens the warehouse, serves until ctx is done, then shuts down
// gracefully. The executor is shared by every request.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	exec, err := warehouse.Open(ctx, cfg.Warehouse, logger)
	if err != nil {
		return fmt.Errorf("failed to open warehouse: %w", err)
	}
	defer cerrors.DeferClose(logger, exec, "failed to close warehouse")

	srv, err := httpapi.New(httpapi.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		Executor:     exec,
		RowLimit:     cfg.Query.RowLimit,
		Columns:      cfg.Query.Columns,
		QueryTimeout: cfg.Query.Timeout,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}

	logger.Info().
		Str("url", srv.URL()).
		Str("version", version.Short()).
		Str("backend", cfg.Warehouse.Backend).
		Str("dataset", cfg.Warehouse.DatasetID).
		Int("row_limit", cfg.Query.RowLimit).
		Msg("Query service started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop HTTP server: %w", err)
	}
	return nil
}
