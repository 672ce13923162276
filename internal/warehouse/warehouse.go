// Package warehouse executes rendered statements against the analytical
// warehouse and returns rows as ordered column/value pairs.
package warehouse

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zxc72608/bigquery/internal/constants"
	"github.com/zxc72608/bigquery/internal/query"
)

// Executor runs statements against a warehouse. Implementations must be safe
// for concurrent use; one Executor is shared by all in-flight requests.
type Executor interface {
	// TableRef returns the quoted, fully qualified reference for a table id.
	TableRef(table string) string

	// Query executes stmt and returns at most maxRows rows. maxRows <= 0
	// reads every row the statement yields.
	Query(ctx context.Context, stmt query.Statement, maxRows int) ([]Row, error)

	// Close releases the underlying client.
	Close() error
}

// Config selects and configures a warehouse backend.
type Config struct {
	// Backend is "bigquery" or "duckdb".
	Backend string `yaml:"backend" env:"BQQUERY_BACKEND"`

	// ProjectID is the BigQuery project that owns the dataset.
	ProjectID string `yaml:"project_id" env:"BQQUERY_PROJECT_ID"`

	// DatasetID is the BigQuery dataset, or the DuckDB schema.
	DatasetID string `yaml:"dataset_id" env:"BQQUERY_DATASET_ID"`

	// CredentialsFile is a service account key. Empty uses application
	// default credentials.
	CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_APPLICATION_CREDENTIALS"`

	// Location pins BigQuery jobs to a region (optional).
	Location string `yaml:"location" env:"BQQUERY_LOCATION"`

	// DuckDBPath is the database file for the duckdb backend. Empty opens an
	// in-memory database.
	DuckDBPath string `yaml:"duckdb_path" env:"BQQUERY_DUCKDB_PATH"`
}

// Open builds the executor selected by cfg.Backend.
func Open(ctx context.Context, cfg Config, logger zerolog.Logger) (Executor, error) {
	switch cfg.Backend {
	case constants.BackendBigQuery, "":
		return NewBigQuery(ctx, cfg, logger)
	case constants.BackendDuckDB:
		return NewDuckDB(cfg.DuckDBPath, cfg.DatasetID, logger)
	default:
		return nil, fmt.Errorf("unsupported warehouse backend: %q", cfg.Backend)
	}
}

// TableRef returns the reference the backend selected by cfg would use for
// table, without connecting. Dry runs use it to render statements offline.
func TableRef(cfg Config, table string) string {
	if cfg.Backend == constants.BackendDuckDB {
		return duckDBTableRef(cfg.DatasetID, table)
	}
	return bigQueryTableRef(cfg.ProjectID, cfg.DatasetID, table)
}
