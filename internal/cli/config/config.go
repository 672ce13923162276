// Package config implements the 'bqquery config' command family.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zxc72608/bigquery/internal/cli/helpers"
	"github.com/zxc72608/bigquery/internal/config"
)

// NewConfigCmd creates the config command and its subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage query service configuration",
		Long: `Manage query service configuration.

Configuration Priority:
  1. BQQUERY_* environment variables (highest)
  2. Config file (--config, $BQQUERY_CONFIG, or ~/.bqquery/config.yaml)
  3. Built-in defaults`,
	}

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newViewCmd())
	cmd.AddCommand(newValidateCmd())

	return cmd
}

// newInitCmd creates the 'config init' command.
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file populated with defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := helpers.ResolveConfigPath(cmd)
			if path == "" {
				p, err := helpers.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("failed to resolve config path: %w", err)
				}
				path = p
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

// newViewCmd creates the 'config view' command.
func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Print the effective configuration",
		Long:  `Prints the configuration after defaults, the config file and environment overrides are applied.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := helpers.LoadConfig(cmd)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return enc.Close()
		},
	}
}

// newValidateCmd creates the 'config validate' command.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := helpers.LoadConfig(cmd); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
			return err
		},
	}
}
