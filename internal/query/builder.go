package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zxc72608/bigquery/internal/filter"
)

// Statement is an executable query with positional "?" parameters.
type Statement struct {
	SQL  string
	Args []any
}

// String renders the statement with its arguments inlined, for logging.
func (s Statement) String() string {
	return Interpolate(s.SQL, s.Args)
}

// Builder constructs SELECT statements with a fluent API.
type Builder struct {
	table   string
	columns []string
	where   []whereClause
	limit   int
}

// whereClause represents a WHERE condition.
type whereClause struct {
	expr string
	args []any
}

// NewBuilder creates a new builder for an already-quoted table reference.
func NewBuilder(table string) *Builder {
	return &Builder{table: table}
}

// Select specifies the columns to retrieve. Defaults to "*".
func (b *Builder) Select(columns ...string) *Builder {
	b.columns = append(b.columns, columns...)
	return b
}

// Where adds a custom WHERE condition with optional arguments.
// Multiple conditions are combined with AND.
func (b *Builder) Where(expr string, args ...any) *Builder {
	b.where = append(b.where, whereClause{expr: expr, args: args})
	return b
}

// Filter adds every predicate of a clause as a bound condition.
// An empty clause adds nothing.
func (b *Builder) Filter(clause filter.Clause) *Builder {
	for _, p := range clause {
		b.Where(p.Placeholder(), p.Value())
	}
	return b
}

// Limit sets the maximum number of rows to return. n <= 0 means no limit.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// Build constructs the statement.
func (b *Builder) Build() (Statement, error) {
	if b.table == "" {
		return Statement{}, fmt.Errorf("table name is required")
	}

	var sql strings.Builder
	args := make([]any, 0)

	sql.WriteString("SELECT ")
	if len(b.columns) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.columns, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.where) > 0 {
		sql.WriteString(" WHERE ")
		exprs := make([]string, len(b.where))
		for i, w := range b.where {
			exprs[i] = w.expr
			args = append(args, w.args...)
		}
		sql.WriteString(strings.Join(exprs, " AND "))
	}

	// LIMIT is inlined: not every warehouse dialect accepts a bound LIMIT.
	if b.limit > 0 {
		sql.WriteString(" LIMIT ")
		sql.WriteString(strconv.Itoa(b.limit))
	}

	return Statement{SQL: sql.String(), Args: args}, nil
}
