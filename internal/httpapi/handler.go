package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/zxc72608/bigquery/internal/constants"
	"github.com/zxc72608/bigquery/internal/entity"
	"github.com/zxc72608/bigquery/internal/filter"
	"github.com/zxc72608/bigquery/internal/query"
	"github.com/zxc72608/bigquery/internal/warehouse"
)

// QueryHandler serves POST /api/query: it resolves the entity, validates the
// filters, renders the statement and returns the matching rows as JSON.
type QueryHandler struct {
	executor warehouse.Executor
	rowLimit int
	columns  string
	timeout  time.Duration
	logger   zerolog.Logger
}

// QueryHandlerConfig contains dependencies for a QueryHandler.
type QueryHandlerConfig struct {
	// Executor runs the statements. Required.
	Executor warehouse.Executor

	// RowLimit caps returned rows; <= 0 disables the LIMIT clause.
	RowLimit int

	// Columns is the SELECT projection. Defaults to "*".
	Columns string

	// Timeout bounds each execution. Defaults to constants.DefaultQueryTimeout.
	Timeout time.Duration

	Logger zerolog.Logger
}

// NewQueryHandler creates a query handler.
func NewQueryHandler(cfg QueryHandlerConfig) *QueryHandler {
	columns := cfg.Columns
	if columns == "" {
		columns = constants.DefaultSelectColumns
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultQueryTimeout
	}

	return &QueryHandler{
		executor: cfg.Executor,
		rowLimit: cfg.RowLimit,
		columns:  columns,
		timeout:  timeout,
		logger:   cfg.Logger.With().Str("handler", "query").Logger(),
	}
}

// ServeHTTP implements http.Handler.
func (h *QueryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, err := decodeQueryRequest(http.MaxBytesReader(w, r.Body, constants.MaxRequestBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d, err := entity.Resolve(req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	clause, err := filter.BuildWhere(d, req.Filters)
	if err != nil {
		var verr *filter.ValidationError
		if errors.As(err, &verr) {
			h.logger.Debug().Str("field", verr.Field).Str("reason", verr.Reason).Msg("Rejected filter")
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	table := h.executor.TableRef(d.PhysicalTable)
	stmt, err := query.NewBuilder(table).
		Select(h.columns).
		Filter(clause).
		Limit(h.rowLimit).
		Build()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Debug().
		Str("entity", d.LogicalName).
		Str("query", query.Render(table, h.columns, clause.String(), h.rowLimit)).
		Int("filters", len(clause)).
		Msg("Executing query")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	rows, err := h.executor.Query(ctx, stmt, h.rowLimit)
	if err != nil {
		h.logger.Error().Err(err).Str("entity", d.LogicalName).Msg("Query failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if rows == nil {
		rows = []warehouse.Row{}
	}
	if err := writeJSON(w, http.StatusOK, rows); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to write response")
	}
}
