package query

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zxc72608/bigquery/internal/cli/helpers"
	cerrors "github.com/zxc72608/bigquery/internal/errors"
	"github.com/zxc72608/bigquery/internal/logging"
	"github.com/zxc72608/bigquery/internal/warehouse"
)

// NewQueryCmd creates the query command for one-shot filter queries.
func NewQueryCmd() *cobra.Command {
	var (
		format string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a filter query against the warehouse and print the rows",
		Long: `Runs the same filter query POST /api/query would run and prints the
results in the specified format (table, CSV, or JSON).

Examples:
  # Client by id (table format)
  bqquery query --type client --id 402

  # Employees in a branch as CSV
  bqquery query -t employee --branch-id 2 -o csv

  # Against a local DuckDB copy
  BQQUERY_BACKEND=duckdb BQQUERY_DUCKDB_PATH=./bq_sam.duckdb bqquery query -t employee --sex F -o json`,
		Args: cobra.NoArgs,
	}
	flags := helpers.AddFilterFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := helpers.ValidateFormat(format, helpers.RowFormats); err != nil {
			return err
		}
		formatter, err := helpers.NewFormatter(helpers.OutputFormat(format))
		if err != nil {
			return err
		}

		cfg, err := helpers.LoadConfig(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("limit") {
			limit = cfg.Query.RowLimit
		}

		logger := logging.NewWithComponent(cfg.Log, "cli")

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Query.Timeout)
		defer cancel()

		exec, err := warehouse.Open(ctx, cfg.Warehouse, logger)
		if err != nil {
			return fmt.Errorf("failed to open warehouse: %w", err)
		}
		defer cerrors.DeferClose(logger, exec, "failed to close warehouse")

		p, err := newPlan(cfg, flags, limit, exec.TableRef)
		if err != nil {
			return err
		}
		stmt, err := p.Statement()
		if err != nil {
			return err
		}

		logger.Debug().Str("query", p.Render()).Msg("Executing query")

		start := time.Now()
		rows, err := exec.Query(ctx, stmt, limit)
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}
		logger.Debug().Int("rows", len(rows)).Dur("duration", time.Since(start)).Msg("Query completed")

		return formatter.Format(rows, cmd.OutOrStdout())
	}

	helpers.AddFormatFlag(cmd, &format, helpers.FormatTable, helpers.RowFormats)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Row cap (defaults to query.row_limit; 0 disables)")

	return cmd
}
