// Package query implements the 'bqquery query' and 'bqquery render' commands.
package query

import (
	"github.com/zxc72608/bigquery/internal/cli/helpers"
	"github.com/zxc72608/bigquery/internal/config"
	"github.com/zxc72608/bigquery/internal/entity"
	"github.com/zxc72608/bigquery/internal/filter"
	qb "github.com/zxc72608/bigquery/internal/query"
)

// plan is a validated filter query ready to render or execute.
type plan struct {
	entity entity.Descriptor
	table  string
	clause filter.Clause
	limit  int
	cols   string
}

// newPlan validates the flags the same way the HTTP endpoint validates a
// payload. tableRef qualifies the physical table name.
func newPlan(cfg *config.Config, flags *helpers.FilterFlags, limit int, tableRef func(string) string) (*plan, error) {
	d, err := entity.Resolve(flags.Type)
	if err != nil {
		return nil, err
	}

	clause, err := filter.BuildWhere(d, flags.Raw())
	if err != nil {
		return nil, err
	}

	return &plan{
		entity: d,
		table:  tableRef(d.PhysicalTable),
		clause: clause,
		limit:  limit,
		cols:   cfg.Query.Columns,
	}, nil
}

// Render returns the statement with literals inlined.
func (p *plan) Render() string {
	return qb.Render(p.table, p.cols, p.clause.String(), p.limit)
}

// Statement returns the parameterized statement.
func (p *plan) Statement() (qb.Statement, error) {
	return qb.NewBuilder(p.table).
		Select(p.cols).
		Filter(p.clause).
		Limit(p.limit).
		Build()
}
