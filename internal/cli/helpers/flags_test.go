package helpers

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFilterFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
	flags := AddFilterFlags(cmd)

	require.NoError(t, cmd.ParseFlags([]string{
		"--type", "employee",
		"--id", "Alice",
		"--branch-id", "3",
		"--sup-id", "",
	}))

	assert.Equal(t, "employee", flags.Type)
	assert.Equal(t, map[string]string{"id": "Alice", "branch_id": "3"}, flags.Raw())

	for _, name := range []string{"id", "branch-id", "salary", "sex", "sup-id", "phone"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat("csv", RowFormats))

	err := ValidateFormat("yaml", RowFormats)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table, csv, json")
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(ConfigEnv, "/from/env.yaml")
		cmd := &cobra.Command{}
		cmd.Flags().String("config", "", "")
		require.NoError(t, cmd.Flags().Set("config", "/from/flag.yaml"))

		assert.Equal(t, "/from/flag.yaml", ResolveConfigPath(cmd))
	})

	t.Run("env next", func(t *testing.T) {
		t.Setenv(ConfigEnv, "/from/env.yaml")
		assert.Equal(t, "/from/env.yaml", ResolveConfigPath(&cobra.Command{}))
	})

	t.Run("missing default file", func(t *testing.T) {
		t.Setenv(ConfigEnv, "")
		assert.Equal(t, "", ResolveConfigPath(&cobra.Command{}))
	})
}
