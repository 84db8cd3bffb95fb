package query

import (
	"context"
	"database/sql"
)

// Rows is a fully materialized result set. Values are rendered as strings,
// matching the wire format of the query endpoints.
type Rows struct {
	Columns []string
	Data    [][]string
}

// Header returns the column row followed by the data rows, the shape the
// /query endpoint has always used.
func (r *Rows) Header() [][]string {
	out := make([][]string, 0, len(r.Data)+1)
	out = append(out, r.Columns)
	out = append(out, r.Data...)
	return out
}

// Run executes the statement verbatim and scans every row into strings.
func Run(ctx context.Context, db *sql.DB, statement string) (*Rows, error) {
	rows, err := db.QueryContext(ctx, statement)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	values := make([]interface{}, len(columns))
	for i := range values {
		values[i] = new(sql.RawBytes)
	}

	result := &Rows{Columns: columns}
	for rows.Next() {
		if err := rows.Scan(values...); err != nil {
			return nil, err
		}

		row := make([]string, len(columns))
		for i, value := range values {
			row[i] = string(*(value.(*sql.RawBytes)))
		}
		result.Data = append(result.Data, row)
	}

	return result, rows.Err()
}
