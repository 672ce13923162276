// Package cli assembles the bqquery command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zxc72608/bigquery/internal/cli/config"
	"github.com/zxc72608/bigquery/internal/cli/query"
	"github.com/zxc72608/bigquery/internal/cli/serve"
	"github.com/zxc72608/bigquery/pkg/version"
)

// NewRootCmd creates the root command with every subcommand registered.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bqquery",
		Short: "Filter query service for the client and employee warehouse tables",
		Long: `Translates filter parameters (id, branch_id, salary, sex, sup_id, phone)
into a parameterized warehouse query and returns the matching rows.

Run 'bqquery serve' for the HTTP endpoint, or 'bqquery query' and
'bqquery render' for one-shot use from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.bqquery/config.yaml)")

	rootCmd.AddCommand(serve.NewServeCmd())
	rootCmd.AddCommand(query.NewQueryCmd())
	rootCmd.AddCommand(query.NewRenderCmd())
	rootCmd.AddCommand(config.NewConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "bqquery version %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "Git commit: %s\n", version.GitCommit)
			_, _ = fmt.Fprintf(out, "Build date: %s\n", version.BuildDate)
			_, _ = fmt.Fprintf(out, "Go version: %s\n", version.GoVersion)
		},
	}
}
