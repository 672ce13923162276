package config

import (
	"fmt"
	"strings"

	"github.com/zxc72608/bigquery/internal/constants"
)

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MultiValidationError represents multiple validation errors.
type MultiValidationError struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *MultiValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("validation failed with %d errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		builder.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return builder.String()
}

// Validate checks the configuration before the service starts.
func (c *Config) Validate() error {
	var errors []ValidationError

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "server.port",
			Message: "port must be between 0 and 65535",
		})
	}

	switch c.Warehouse.Backend {
	case constants.BackendBigQuery:
		if c.Warehouse.ProjectID == "" {
			errors = append(errors, ValidationError{
				Field:   "warehouse.project_id",
				Message: "project id is required for the bigquery backend",
			})
		}
		if c.Warehouse.DatasetID == "" {
			errors = append(errors, ValidationError{
				Field:   "warehouse.dataset_id",
				Message: "dataset id is required for the bigquery backend",
			})
		}
	case constants.BackendDuckDB:
	default:
		errors = append(errors, ValidationError{
			Field:   "warehouse.backend",
			Message: "backend must be 'bigquery' or 'duckdb'",
		})
	}

	if c.Query.Timeout <= 0 {
		errors = append(errors, ValidationError{
			Field:   "query.timeout",
			Message: "query timeout must be positive",
		})
	}

	if strings.TrimSpace(c.Query.Columns) == "" {
		errors = append(errors, ValidationError{
			Field:   "query.columns",
			Message: "columns cannot be empty",
		})
	}

	if len(errors) > 0 {
		return &MultiValidationError{Errors: errors}
	}
	return nil
}
