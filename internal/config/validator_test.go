package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "duckdb needs no project",
			mutate:  func(c *Config) { c.Warehouse.Backend = "duckdb"; c.Warehouse.ProjectID = "" },
			wantErr: false,
		},
		{
			name:    "zero row limit disables limit",
			mutate:  func(c *Config) { c.Query.RowLimit = 0 },
			wantErr: false,
		},
		{
			name:    "bigquery missing project",
			mutate:  func(c *Config) { c.Warehouse.ProjectID = "" },
			wantErr: true,
			errMsg:  "project id is required",
		},
		{
			name:    "bigquery missing dataset",
			mutate:  func(c *Config) { c.Warehouse.DatasetID = "" },
			wantErr: true,
			errMsg:  "dataset id is required",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Warehouse.Backend = "" },
			wantErr: true,
			errMsg:  "backend must be",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
			errMsg:  "port must be between",
		},
		{
			name:    "non-positive timeout",
			mutate:  func(c *Config) { c.Query.Timeout = 0 },
			wantErr: true,
			errMsg:  "query timeout must be positive",
		},
		{
			name:    "blank columns",
			mutate:  func(c *Config) { c.Query.Columns = "  " },
			wantErr: true,
			errMsg:  "columns cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.True(t, strings.Contains(err.Error(), tt.errMsg), "error %q should contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestMultiValidationError_Format(t *testing.T) {
	err := &MultiValidationError{Errors: []ValidationError{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}}

	assert.Equal(t, "validation failed with 2 errors:\n  1. a: bad\n  2. b: worse\n", err.Error())
	assert.Equal(t, "no validation errors", (&MultiValidationError{}).Error())
	assert.Equal(t, "a: bad", (&MultiValidationError{Errors: err.Errors[:1]}).Error())
}
