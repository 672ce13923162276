// Package constants defines shared configuration constants and defaults.
package constants

import "time"

// Server - HTTP endpoint defaults.
const (
	// DefaultHost is the default listen host for the HTTP API.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the default listen port for the HTTP API.
	DefaultPort = 5000

	// DefaultQueryPath is the route for filter queries.
	DefaultQueryPath = "/api/query"

	// DefaultHealthPath bypasses request logging noise in dashboards.
	DefaultHealthPath = "/health"
)

// Timeouts - Default timeout values.
const (
	// DefaultQueryTimeout is the default timeout for warehouse queries.
	DefaultQueryTimeout = 30 * time.Second

	// DefaultShutdownTimeout bounds graceful HTTP shutdown.
	DefaultShutdownTimeout = 10 * time.Second

	DefaultReadHeaderTimeout = 10 * time.Second

	DefaultIdleTimeout = 120 * time.Second
)

// Query - Default query shaping.
const (
	// DefaultRowLimit is the fixed row cap applied to every filter query.
	DefaultRowLimit = 10

	// MaxRequestBytes caps the size of a decoded query payload.
	MaxRequestBytes = 1 << 20
)

// Backends - Supported warehouse backends.
const (
	BackendBigQuery = "bigquery"
	BackendDuckDB   = "duckdb"
)
