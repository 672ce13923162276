// Package config provides configuration loading and validation for the query service.
package config

import (
	"time"

	"github.com/zxc72608/bigquery/internal/logging"
	"github.com/zxc72608/bigquery/internal/warehouse"
)

// Config is the complete service configuration. It is built once at startup
// and passed explicitly to the components that need it.
type Config struct {
	Server    ServerConfig     `yaml:"server"`
	Warehouse warehouse.Config `yaml:"warehouse"`
	Query     QueryConfig      `yaml:"query"`
	Log       logging.Config   `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host" env:"BQQUERY_HOST"`
	Port int    `yaml:"port" env:"BQQUERY_PORT"`
}

// QueryConfig shapes every filter query.
type QueryConfig struct {
	// RowLimit caps the rows returned per request.
	RowLimit int `yaml:"row_limit" env:"BQQUERY_ROW_LIMIT"`
	// Timeout bounds a single warehouse execution.
	Timeout time.Duration `yaml:"timeout" env:"BQQUERY_QUERY_TIMEOUT"`
	// Columns is the SELECT projection.
	Columns string `yaml:"columns" env:"BQQUERY_COLUMNS"`
}
