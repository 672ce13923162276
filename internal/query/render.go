package query

import (
	"strconv"
	"strings"
)

// Render builds "SELECT <columns> FROM <table> [WHERE <where>] [LIMIT <limit>];".
// WHERE is omitted for an empty clause and LIMIT for limit <= 0. An empty
// column list selects everything.
func Render(table, columns, where string, limit int) string {
	if strings.TrimSpace(columns) == "" {
		columns = "*"
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(columns)
	b.WriteString(" FROM ")
	b.WriteString(table)

	if where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}

	if limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(limit))
	}

	return strings.TrimSpace(b.String()) + ";"
}
