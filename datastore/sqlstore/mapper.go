/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlstore

// Scanner is implemented by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Mapper maps an entity type onto one table.
type Mapper[T any] interface {
	// Table returns the table name.
	Table() string
	// KeyColumn returns the primary key column.
	KeyColumn() string
	// Columns returns every column, in the order used by Values and Scan.
	Columns() []string
	// Values returns the column values of entity, aligned with Columns.
	Values(entity *T) []any
	// Key returns the primary key value of entity.
	Key(entity *T) any
	// Scan reads one row selected with Columns.
	Scan(row Scanner) (*T, error)
}

// Where is the filter descriptor of the SQL engine: a boolean SQL expression
// with ? placeholders. An empty Clause matches every row.
type Where struct {
	Clause string
	Args   []any
}

// Eq matches rows whose column equals value.
func Eq(column string, value any) Where {
	return Where{Clause: quote(column) + " = ?", Args: []any{value}}
}

// Like matches rows whose column contains fragment. An empty fragment
// matches every row.
func Like(column, fragment string) Where {
	if fragment == "" {
		return Where{}
	}
	return Where{Clause: quote(column) + " LIKE ?", Args: []any{"%" + escapeLike(fragment) + "%"}}
}

// OrderBy is the sort descriptor of the SQL engine. Column must be one of the
// mapper's columns; empty orders by the key column.
type OrderBy struct {
	Column    string
	Ascending bool
}
