package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zxc72608/bigquery/internal/cli/helpers"
	"github.com/zxc72608/bigquery/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{Use: "bqquery", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", "", "config file")
	root.AddCommand(NewConfigCmd())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestConfigInit(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(helpers.ConfigEnv, "")

	out, err := execute(t, "config", "init")
	require.NoError(t, err)

	path := filepath.Join(home, ".bqquery", "config.yaml")
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.Query.RowLimit)

	_, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigView_AppliesEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(helpers.ConfigEnv, "")
	t.Setenv("BQQUERY_ROW_LIMIT", "25")
	t.Setenv("BQQUERY_BACKEND", "duckdb")

	out, err := execute(t, "config", "view")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 25, cfg.Query.RowLimit)
	assert.Equal(t, "duckdb", cfg.Warehouse.Backend)
}

func TestConfigValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(helpers.ConfigEnv, "")

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("warehouse:\n  backend: snowflake\n"), 0o600))

	_, err := execute(t, "--config", bad, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warehouse.backend")

	out, err := execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "valid")
}
