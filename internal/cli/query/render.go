package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zxc72608/bigquery/internal/cli/helpers"
	"github.com/zxc72608/bigquery/internal/warehouse"
)

// NewRenderCmd creates the render command, a dry run that prints the
// statement a filter set produces without contacting the warehouse.
func NewRenderCmd() *cobra.Command {
	var (
		limit  int
		params bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the SQL for a filter set without running it",
		Long: `Validates the filters exactly like POST /api/query and prints the
resulting statement with literal values inlined.

Examples:
  # Employee by name
  bqquery render --type employee --id Alice

  # Combined filters
  bqquery render -t employee --branch-id 3 --salary 50000

  # Show the parameterized form that is actually executed
  bqquery render -t client --phone 0912345678 --params`,
		Args: cobra.NoArgs,
	}
	flags := helpers.AddFilterFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := helpers.LoadConfig(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("limit") {
			limit = cfg.Query.RowLimit
		}

		p, err := newPlan(cfg, flags, limit, func(table string) string {
			return warehouse.TableRef(cfg.Warehouse, table)
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !params {
			_, err := fmt.Fprintln(out, p.Render())
			return err
		}

		stmt, err := p.Statement()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, stmt.SQL); err != nil {
			return err
		}
		for i, arg := range stmt.Args {
			if _, err := fmt.Fprintf(out, "  $%d = %#v\n", i+1, arg); err != nil {
				return err
			}
		}
		return nil
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Row cap (defaults to query.row_limit; 0 disables)")
	cmd.Flags().BoolVar(&params, "params", false, "Print the parameterized statement and its bound values")

	return cmd
}
