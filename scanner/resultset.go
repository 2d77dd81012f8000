package scanner

import (
	"reflect"

	"github.com/go-data-exporter/mockrows/loader"
	"github.com/go-data-exporter/mockrows/resultset"
	"github.com/go-data-exporter/mockrows/sqltype"
)

// DriverFixture is the driver name reported for fixture result sets.
const DriverFixture = "mockrows"

type resultSetScanner struct {
	rs      *resultset.ResultSet
	columns []Column
	row     []any
}

// FromResultSet adapts a fixture result set to Rows. Values are converted
// according to each column's declared type, see resultset.ResultSet.Value.
// The scanner advances rs; callers should not drive rs concurrently.
func FromResultSet(rs *resultset.ResultSet) Rows {
	s := &resultSetScanner{rs: rs}
	for _, c := range rs.Columns() {
		s.columns = append(s.columns, &fixtureColumn{col: c})
	}
	return s
}

func (s *resultSetScanner) Next() bool {
	return s.rs.Next()
}

func (s *resultSetScanner) ScanRow() ([]any, error) {
	if s.row == nil {
		s.row = make([]any, len(s.columns))
	}
	for i := range s.columns {
		v, err := s.rs.Value(i + 1)
		if err != nil {
			return nil, err
		}
		s.row[i] = v
	}
	return s.row, nil
}

func (s *resultSetScanner) Columns() ([]Column, error) {
	return s.columns, nil
}

func (s *resultSetScanner) Driver() string {
	return DriverFixture
}

func (s *resultSetScanner) Err() error {
	return nil
}

type fixtureColumn struct {
	col loader.Column
}

func (c *fixtureColumn) Name() string {
	return c.col.Name
}

func (c *fixtureColumn) Length() (length int64, ok bool) {
	return 0, false
}

func (c *fixtureColumn) DecimalSize() (precision, scale int64, ok bool) {
	return 0, 0, false
}

var (
	typeInt64   = reflect.TypeOf(int64(0))
	typeFloat64 = reflect.TypeOf(float64(0))
	typeBool    = reflect.TypeOf(false)
	typeBytes   = reflect.TypeOf([]byte(nil))
	typeString  = reflect.TypeOf("")
)

func (c *fixtureColumn) ScanType() reflect.Type {
	switch c.col.Type.Family() {
	case sqltype.IntegerFamily:
		return typeInt64
	case sqltype.FloatingFamily:
		return typeFloat64
	case sqltype.BooleanFamily:
		return typeBool
	case sqltype.BinaryFamily:
		return typeBytes
	}
	return typeString
}

// Nullable reports true for numeric columns, whose unparsable cells scan
// as nil.
func (c *fixtureColumn) Nullable() (nullable, ok bool) {
	return c.col.Type.Family().Numeric(), true
}

func (c *fixtureColumn) DatabaseTypeName() string {
	return c.col.Type.String()
}
