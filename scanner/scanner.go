// Package scanner defines a generic row source that codecs consume. Result
// sets loaded from fixtures, database/sql rows, Hive cursors and plain
// slices all satisfy it.
package scanner

type Rows interface {
	Next() bool
	ScanRow() ([]any, error)
	Columns() ([]Column, error)
	Driver() string
	Err() error
}

type Metadata struct {
	RowID  int
	Driver string
	Column Column
}
