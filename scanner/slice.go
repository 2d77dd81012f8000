package scanner

import (
	"fmt"
	"io"
	"reflect"

	"github.com/pkg/errors"
)

// sliceRowsScanner implements Rows over a slice of rows.
// It is useful for testing or small in-memory data sources.
type sliceRowsScanner struct {
	rows    [][]any
	names   []string
	columns []Column
	cursor  int // index of the current row, -1 before the first Next
}

// FromData creates a Rows scanner from a 2D slice of data. Columns are named
// column_0, column_1, ... and typed after the values of the first row.
func FromData(rows [][]any) Rows {
	return FromNamedData(nil, rows)
}

// FromNamedData is FromData with explicit column names. Missing names fall
// back to the column_N form.
func FromNamedData(names []string, rows [][]any) Rows {
	s := &sliceRowsScanner{rows: rows, names: names, cursor: -1}
	s.columns, _ = s.Columns()
	return s
}

func (s *sliceRowsScanner) Driver() string {
	return "go-slice"
}

func (s *sliceRowsScanner) Err() error {
	return nil
}

func (s *sliceRowsScanner) Next() bool {
	if s.cursor < len(s.rows) {
		s.cursor++
	}
	return s.cursor < len(s.rows)
}

// ScanRow returns the current row. Rows must have the width of the first row.
func (s *sliceRowsScanner) ScanRow() ([]any, error) {
	if s.cursor >= len(s.rows) {
		return nil, io.EOF
	}
	if s.cursor < 0 {
		return nil, errors.New("mockrows: scan called without calling Next")
	}
	row := s.rows[s.cursor]
	if len(row) != len(s.columns) {
		return nil, errors.Errorf("length of row %d != length of the first row: %d != %d", s.cursor+1, len(row), len(s.columns))
	}
	return row, nil
}

// Columns returns the column metadata inferred from the first row.
func (s *sliceRowsScanner) Columns() ([]Column, error) {
	if s.columns != nil {
		return s.columns, nil
	}
	if len(s.rows) == 0 {
		return s.columns, nil
	}
	for i, v := range s.rows[0] {
		c := &sliceColumn{
			index: i,
			name:  fmt.Sprintf("column_%d", i),
		}
		if i < len(s.names) && s.names[i] != "" {
			c.name = s.names[i]
		}
		if v != nil {
			c.goType = reflect.TypeOf(v)
		}
		s.columns = append(s.columns, c)
	}
	return s.columns, nil
}
