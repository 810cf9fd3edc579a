// Package query provides a fluent SQL query builder with projection mapping
// between domain field names and database columns.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap associates domain field names with table columns so builders
// can reference fields without knowing the underlying schema.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	fields  map[string]string
}

// NewProjectionMap creates a projection for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project registers a column under a domain field name. Registration order
// determines column order in generated SELECT statements.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.columns = append(p.columns, column)
	p.fields[field] = column
	return p
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Columns returns the aliased column list for SELECT clauses.
func (p *ProjectionMap) Columns() string {
	qualified := make([]string, len(p.columns))
	for i, col := range p.columns {
		qualified[i] = p.alias + "." + col
	}
	return strings.Join(qualified, ", ")
}

// Column resolves a domain field name to its aliased column reference.
// Unknown fields fall back to the first registered column.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.fields[field]; ok {
		return p.alias + "." + col
	}
	if len(p.columns) > 0 {
		return p.alias + "." + p.columns[0]
	}
	return field
}

// Has reports whether the field is registered in the projection.
func (p *ProjectionMap) Has(field string) bool {
	_, ok := p.fields[field]
	return ok
}
