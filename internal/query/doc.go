// Package query renders SELECT statements for filter queries.
//
// Render produces the single-line literal statement used for logs and dry
// runs:
//
//	query.Render("`proj.ds.client`", "*", clause.String(), 10)
//	// SELECT * FROM `proj.ds.client` WHERE client_id = 42 LIMIT 10;
//
// Builder produces the statement that is actually executed, with filter
// literals bound as positional parameters:
//
//	stmt, err := query.NewBuilder("`proj.ds.client`").
//	    Filter(clause).
//	    Limit(10).
//	    Build()
//
//	rows, err := executor.Query(ctx, stmt)
//
// The builder focuses on SQL generation only and does not execute queries.
package query
