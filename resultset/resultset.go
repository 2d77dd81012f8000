// Package resultset emulates a forward-only query result over a loaded
// fixture table. Columns are addressed by 1-based position or by name and
// read through typed accessors whose behavior depends on the declared
// column type.
package resultset

import (
	"github.com/pkg/errors"

	"github.com/go-data-exporter/mockrows/loader"
	"github.com/go-data-exporter/mockrows/sqltype"
)

// beforeFirst is the cursor position before the first call to Next.
const beforeFirst = -1

// ResultSet is a cursor over an immutable table. It is not safe for
// concurrent use.
type ResultSet struct {
	columns []loader.Column
	rows    [][]string
	current int
}

var _ Queryable = (*ResultSet)(nil)

// New wraps t. The result set takes ownership of the table.
func New(t *loader.Table) *ResultSet {
	return &ResultSet{
		columns: t.Columns,
		rows:    t.Rows,
		current: beforeFirst,
	}
}

// ColumnCount returns the number of columns.
func (rs *ResultSet) ColumnCount() int {
	return len(rs.columns)
}

// Columns returns a copy of the column descriptors.
func (rs *ResultSet) Columns() []loader.Column {
	return append([]loader.Column(nil), rs.columns...)
}

// Column returns the descriptor at pos.
func (rs *ResultSet) Column(pos int) (loader.Column, error) {
	if pos < 1 || pos > len(rs.columns) {
		return loader.Column{}, errors.Wrapf(ErrColumnIndex, "position %d not in [1, %d]", pos, len(rs.columns))
	}
	return rs.columns[pos-1], nil
}

// ColumnName returns the name of the column at pos.
func (rs *ResultSet) ColumnName(pos int) (string, error) {
	c, err := rs.Column(pos)
	return c.Name, err
}

// ColumnType returns the declared type of the column at pos.
func (rs *ResultSet) ColumnType(pos int) (sqltype.Type, error) {
	c, err := rs.Column(pos)
	return c.Type, err
}

// FindColumn returns the position of the first column called name.
func (rs *ResultSet) FindColumn(name string) (int, error) {
	for _, c := range rs.columns {
		if c.Name == name {
			return c.Position, nil
		}
	}
	return 0, errors.Wrapf(ErrNoSuchColumn, "%q", name)
}

// Next advances to the following row and reports whether it exists.
// Once it returns false every later call returns false as well.
func (rs *ResultSet) Next() bool {
	if rs.current < len(rs.rows) {
		rs.current++
	}
	return rs.current < len(rs.rows)
}

// Row returns the 1-based number of the current row, or 0 when there is
// no current row.
func (rs *ResultSet) Row() int {
	if !rs.positioned() {
		return 0
	}
	return rs.current + 1
}

// Len returns the number of data rows.
func (rs *ResultSet) Len() int {
	return len(rs.rows)
}

func (rs *ResultSet) positioned() bool {
	return rs.current >= 0 && rs.current < len(rs.rows)
}

// cell resolves pos in the current row. The returned flag reports whether
// the column's family populates the requested representation.
func (rs *ResultSet) cell(pos int, r repr) (string, bool, error) {
	if !rs.positioned() {
		return "", false, ErrNoCursorPosition
	}
	col, err := rs.Column(pos)
	if err != nil {
		return "", false, err
	}
	row := rs.rows[rs.current]
	if pos > len(row) {
		return "", false, errors.Wrapf(ErrShortRow, "row %d has %d cells, position %d", rs.current+1, len(row), pos)
	}
	return row[pos-1], dispatch[col.Type.Family()]&r != 0, nil
}

// lookup resolves name to a position, checking the cursor first so that
// exhausted cursors report ErrNoCursorPosition regardless of the name.
func (rs *ResultSet) lookup(name string) (int, error) {
	if !rs.positioned() {
		return 0, ErrNoCursorPosition
	}
	return rs.FindColumn(name)
}
