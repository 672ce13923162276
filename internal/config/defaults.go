package config

import (
	"github.com/zxc72608/bigquery/internal/constants"
	"github.com/zxc72608/bigquery/internal/logging"
	"github.com/zxc72608/bigquery/internal/warehouse"
)

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: constants.DefaultHost,
			Port: constants.DefaultPort,
		},
		Warehouse: warehouse.Config{
			Backend:    constants.BackendBigQuery,
			ProjectID:  constants.DefaultProjectID,
			DatasetID:  constants.DefaultDatasetID,
			DuckDBPath: constants.DefaultDuckDBPath,
		},
		Query: QueryConfig{
			RowLimit: constants.DefaultRowLimit,
			Timeout:  constants.DefaultQueryTimeout,
			Columns:  constants.DefaultSelectColumns,
		},
		Log: logging.DefaultConfig(),
	}
}
