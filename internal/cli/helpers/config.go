package helpers

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zxc72608/bigquery/internal/config"
	"github.com/zxc72608/bigquery/internal/constants"
)

// ConfigEnv overrides the config file location.
const ConfigEnv = "BQQUERY_CONFIG"

// DefaultConfigPath returns ~/.bqquery/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.DefaultDir, constants.ConfigFile), nil
}

// ResolveConfigPath picks the config file: the --config flag, then
// BQQUERY_CONFIG, then the default path if it exists. It returns "" when no
// file applies, in which case defaults and environment variables are used.
func ResolveConfigPath(cmd *cobra.Command) string {
	if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	p, err := DefaultConfigPath()
	if err != nil {
		return ""
	}
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

// LoadConfig loads the configuration for cmd.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(ResolveConfigPath(cmd))
}
