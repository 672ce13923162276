package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	duckdbDriver "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	cerrors "github.com/zxc72608/bigquery/internal/errors"
	"github.com/zxc72608/bigquery/internal/query"
)

// DuckDB runs statements against a local DuckDB database. It stands in for
// the cloud warehouse in development and tests.
type DuckDB struct {
	db     *sql.DB
	schema string
	logger zerolog.Logger
}

// NewDuckDB opens the database at path ("" for in-memory). Tables are looked
// up in schema when it is set.
func NewDuckDB(path, schema string, logger zerolog.Logger) (*DuckDB, error) {
	connector, err := duckdbDriver.NewConnector(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open duckdb %q", path)
	}

	return &DuckDB{
		db:     sql.OpenDB(connector),
		schema: schema,
		logger: logger.With().Str("component", "duckdb").Logger(),
	}, nil
}

// DB exposes the handle for schema setup.
func (d *DuckDB) DB() *sql.DB {
	return d.db
}

// TableRef returns "schema"."table", or "table" without a schema.
func (d *DuckDB) TableRef(table string) string {
	return duckDBTableRef(d.schema, table)
}

func duckDBTableRef(schema, table string) string {
	if schema == "" {
		return quoteIdent(table)
	}
	return quoteIdent(schema) + "." + quoteIdent(table)
}

// Query runs stmt with "?" parameters bound by the driver.
func (d *DuckDB) Query(ctx context.Context, stmt query.Statement, maxRows int) (result []Row, err error) {
	start := time.Now()

	rows, err := d.db.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		err = errors.Wrapf(err, "failed to execute query")
		return
	}
	defer cerrors.DeferClose(d.logger, rows, "failed to close rows")

	columns, err := rows.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get columns")
		return
	}

	result = make([]Row, 0)
	for (maxRows <= 0 || len(result) < maxRows) && rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err = rows.Scan(ptrs...); err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return nil, err
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			row[i] = Column{Name: col, Value: duckValue(values[i])}
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		err = errors.Wrapf(err, "error iterating rows")
		return nil, err
	}

	d.logger.Debug().
		Str("sql", stmt.String()).
		Int("rows", len(result)).
		Dur("duration", time.Since(start)).
		Msg("Query completed")

	return result, nil
}

// Close closes the database.
func (d *DuckDB) Close() error {
	return d.db.Close()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// duckValue converts driver types that would not encode to readable JSON.
func duckValue(v any) any {
	switch val := v.(type) {
	case duckdbDriver.Decimal:
		return val.Float64()
	case duckdbDriver.Interval:
		return fmt.Sprintf("%d months %d days %d us", val.Months, val.Days, val.Micros)
	default:
		return val
	}
}
