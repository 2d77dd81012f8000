package scanner

import "database/sql"

type sqlRowsScanner struct {
	*sql.Rows

	driver         string
	columns        []Column
	currentRow     []any
	currentRowPtrs []any
}

// FromSQL adapts rows returned by database/sql. The driver name is
// reported by Driver and passed to codec mappers.
func FromSQL(rows *sql.Rows, driver string) Rows {
	return &sqlRowsScanner{Rows: rows, driver: driver}
}

// sqlColumn is a *sql.ColumnType whose type name falls back to the Go scan
// type when the driver does not report one, as MySQL does for some
// expressions.
type sqlColumn struct {
	*sql.ColumnType
}

func (c *sqlColumn) DatabaseTypeName() string {
	if name := c.ColumnType.DatabaseTypeName(); name != "" {
		return name
	}
	if t := c.ScanType(); t != nil {
		return t.String()
	}
	return ""
}

func (s *sqlRowsScanner) Columns() ([]Column, error) {
	if s.columns != nil {
		return s.columns, nil
	}
	cc, err := s.Rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	for _, c := range cc {
		s.columns = append(s.columns, &sqlColumn{ColumnType: c})
	}
	return s.columns, nil
}

// ScanRow scans the current row into a reused []any.
func (s *sqlRowsScanner) ScanRow() ([]any, error) {
	if s.columns == nil {
		if _, err := s.Columns(); err != nil {
			return nil, err
		}
	}
	if s.currentRow == nil {
		s.currentRow = make([]any, len(s.columns))
		s.currentRowPtrs = make([]any, len(s.columns))
		for i := range s.columns {
			s.currentRowPtrs[i] = &s.currentRow[i]
		}
	}
	if err := s.Rows.Scan(s.currentRowPtrs...); err != nil {
		return nil, err
	}
	return s.currentRow, nil
}

func (s *sqlRowsScanner) Driver() string {
	return s.driver
}
