package query

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxc72608/bigquery/internal/cli/helpers"
	"github.com/zxc72608/bigquery/internal/testutil"
)

// isolateConfig keeps the commands away from any config on the host.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(helpers.ConfigEnv, "")
	t.Setenv("BQQUERY_BACKEND", "")
	t.Setenv("BQQUERY_PROJECT_ID", "")
	t.Setenv("BQQUERY_DATASET_ID", "")
	t.Setenv("BQQUERY_ROW_LIMIT", "")
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{Use: "bqquery", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", "", "config file")
	root.AddCommand(cmd)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRenderCmd(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "client by id",
			args: []string{"--type", "client", "--id", "42"},
			want: "SELECT * FROM `bigquery-477702.bq_sam.client` WHERE client_id = 42 LIMIT 10;\n",
		},
		{
			name: "employee by name",
			args: []string{"-t", "employee", "--id", "Alice"},
			want: "SELECT * FROM `bigquery-477702.bq_sam.emploee` WHERE name='Alice' LIMIT 10;\n",
		},
		{
			name: "combined filters",
			args: []string{"-t", "employee", "--branch-id", "3", "--salary", "50000"},
			want: "SELECT * FROM `bigquery-477702.bq_sam.emploee` WHERE branch_id = 3 AND\n    salary = 50000 LIMIT 10;\n",
		},
		{
			name: "phone quoted",
			args: []string{"-t", "client", "--phone", "0912345678"},
			want: "SELECT * FROM `bigquery-477702.bq_sam.client` WHERE phone='0912345678' LIMIT 10;\n",
		},
		{
			name: "no filters no limit",
			args: []string{"-t", "employee", "--limit", "0"},
			want: "SELECT * FROM `bigquery-477702.bq_sam.emploee`;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewRenderCmd(), append([]string{"render"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderCmd_Params(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, NewRenderCmd(), "render", "-t", "employee", "--id", "105", "--sex", "M", "--params")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT * FROM `bigquery-477702.bq_sam.emploee` WHERE emp_id = ? AND sex = ? LIMIT 10\n"+
			"  $1 = 105\n"+
			"  $2 = \"M\"\n",
		out)
}

func TestRenderCmd_DuckDBBackend(t *testing.T) {
	isolateConfig(t)
	t.Setenv("BQQUERY_BACKEND", "duckdb")

	out, err := execute(t, NewRenderCmd(), "render", "-t", "client", "--id", "402")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM \"bq_sam\".\"client\" WHERE client_id = 402 LIMIT 10;\n", out)
}

func TestRenderCmd_Errors(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing type", []string{"--id", "1"}, "missing 'type' parameter"},
		{"unknown type", []string{"-t", "branch"}, "invalid query type"},
		{"numeric sex", []string{"-t", "employee", "--sex", "123"}, "sex: must not be numeric"},
		{"text salary", []string{"-t", "employee", "--salary", "abc"}, "salary: must be numeric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, NewRenderCmd(), append([]string{"render"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestQueryCmd_DuckDB(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "warehouse.duckdb")
	seeded := testutil.NewTestWarehouseAt(t, path)
	require.NoError(t, seeded.Close())

	t.Setenv("BQQUERY_BACKEND", "duckdb")
	t.Setenv("BQQUERY_DUCKDB_PATH", path)

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, NewQueryCmd(), "query", "-t", "employee", "--branch-id", "2", "--salary", "50000", "--sex", "F", "-o", "json")
		require.NoError(t, err)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Pam Beesly", rows[0]["name"])
	})

	t.Run("csv with limit", func(t *testing.T) {
		out, err := execute(t, NewQueryCmd(), "query", "-t", "employee", "-o", "csv", "-n", "3")
		require.NoError(t, err)
		assert.Len(t, bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n")), 4)
	})

	t.Run("table", func(t *testing.T) {
		out, err := execute(t, NewQueryCmd(), "query", "-t", "client", "--phone", "0934567890")
		require.NoError(t, err)
		assert.Contains(t, out, "FedEx")
		assert.Contains(t, out, "(1 rows)")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := execute(t, NewQueryCmd(), "query", "-t", "client", "-o", "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})

	t.Run("validation error", func(t *testing.T) {
		_, err := execute(t, NewQueryCmd(), "query", "-t", "employee", "--sup-id", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sup_id: must be numeric")
	})
}
