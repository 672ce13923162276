// Package filter turns the optional equality filters of a query request into
// a WHERE clause.
//
// Each recognized key is validated against its expected shape and becomes a
// Predicate. The resulting Clause can be rendered two ways:
//
//	clause.String()       // "branch_id = 3 AND\n    salary = 50000"
//	clause.Placeholders() // "branch_id = ? AND salary = ?"
//	clause.Args()         // []any{int64(3), int64(50000)}
//
// The inlined form is used for logs and dry runs; execution always binds Args.
package filter
