package sqldriver

import (
	"database/sql/driver"
	"io"
	"reflect"

	"github.com/go-data-exporter/mockrows/resultset"
	"github.com/go-data-exporter/mockrows/scanner"
)

var (
	_ driver.Rows                           = (*rows)(nil)
	_ driver.RowsColumnTypeDatabaseTypeName = (*rows)(nil)
	_ driver.RowsColumnTypeScanType         = (*rows)(nil)
	_ driver.RowsColumnTypeNullable         = (*rows)(nil)
)

// rows reads a result set through the scanner adapter so that values and
// column types match what the codecs see.
type rows struct {
	src     scanner.Rows
	names   []string
	columns []scanner.Column
}

func newRows(rs *resultset.ResultSet) *rows {
	src := scanner.FromResultSet(rs)
	cols, _ := src.Columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name()
	}
	return &rows{src: src, names: names, columns: cols}
}

func (r *rows) Columns() []string {
	return r.names
}

func (r *rows) Close() error {
	return nil
}

func (r *rows) Next(dest []driver.Value) error {
	if !r.src.Next() {
		return io.EOF
	}
	values, err := r.src.ScanRow()
	if err != nil {
		return err
	}
	for i := range dest {
		dest[i] = values[i]
	}
	return nil
}

func (r *rows) ColumnTypeDatabaseTypeName(index int) string {
	return r.columns[index].DatabaseTypeName()
}

func (r *rows) ColumnTypeScanType(index int) reflect.Type {
	return r.columns[index].ScanType()
}

func (r *rows) ColumnTypeNullable(index int) (nullable, ok bool) {
	return r.columns[index].Nullable()
}
