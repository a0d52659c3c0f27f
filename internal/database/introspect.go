package database

import (
	"context"
	"fmt"
)

// Table describes a table or view visible to the connected role
type Table struct {
	Schema string
	Name   string
	Kind   string // "table" or "view"
}

// Column describes a single column of a table or view
type Column struct {
	Name     string
	DataType string
	Nullable bool
}

// QualifiedName returns the schema-qualified table name
func (t *Table) QualifiedName() string {
	return fmt.Sprintf("%s.%s", t.Schema, t.Name)
}

// ListTables returns all user tables and views, ordered by schema and name.
// System catalogs (pg_catalog, information_schema) are excluded.
func (p *Pool) ListTables(ctx context.Context) ([]Table, error) {
	const query = `
		SELECT table_schema, table_name,
		       CASE table_type WHEN 'VIEW' THEN 'view' ELSE 'table' END
		FROM information_schema.tables
		WHERE table_schema NOT IN ('pg_catalog', 'information_schema')
		ORDER BY table_schema, table_name`

	rows, err := p.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []Table
	for rows.Next() {
		var t Table
		if err := rows.Scan(&t.Schema, &t.Name, &t.Kind); err != nil {
			return nil, fmt.Errorf("failed to scan table row: %w", err)
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

// ListColumns returns the columns of a table in ordinal order
func (p *Pool) ListColumns(ctx context.Context, schema, table string) ([]Column, error) {
	const query = `
		SELECT column_name, data_type, is_nullable = 'YES'
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`

	rows, err := p.Query(ctx, query, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %s.%s: %w", schema, table, err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.Name, &c.DataType, &c.Nullable); err != nil {
			return nil, fmt.Errorf("failed to scan column row: %w", err)
		}
		columns = append(columns, c)
	}
	return columns, rows.Err()
}
