package resultset

import "github.com/pkg/errors"

var (
	// ErrColumnIndex is returned for a column position outside [1, ColumnCount()].
	ErrColumnIndex = errors.New("mockrows: column index out of range")
	// ErrNoSuchColumn is returned when no column has the requested name.
	ErrNoSuchColumn = errors.New("mockrows: no such column")
	// ErrNoCursorPosition is returned by accessors called before the first
	// Next or after Next has reported false.
	ErrNoCursorPosition = errors.New("mockrows: no current row")
	// ErrShortRow is returned when the current row has no cell at the
	// addressed position.
	ErrShortRow = errors.New("mockrows: row has no cell at position")
)
