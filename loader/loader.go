// Package loader reads a delimited fixture file into an in-memory table.
//
// The first record is a typed header: every cell holds a column name and a
// type token separated by whitespace, for example "id INTEGER". All other
// records are data rows and are kept as raw text.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-data-exporter/mockrows/sqltype"
)

// DefaultDelimiter separates cells when no override is given.
const DefaultDelimiter = ','

// ErrSchema is matched by every header error.
var ErrSchema = errors.New("mockrows: invalid header")

// SchemaError describes a malformed or unrecognized header cell.
type SchemaError struct {
	Position int    // 1-based column position, 0 when the header is missing
	Cell     string // the offending header cell
	Reason   string
}

func (e *SchemaError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("%s: %s", ErrSchema, e.Reason)
	}
	return fmt.Sprintf("%s: column %d %q: %s", ErrSchema, e.Position, e.Cell, e.Reason)
}

// Is reports ErrSchema equivalence so callers can use errors.Is.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// Column describes one column of a loaded table.
type Column struct {
	Name     string
	Type     sqltype.Type
	Position int // 1-based
}

// Table is the full content of a fixture file.
type Table struct {
	Columns []Column
	Rows    [][]string
}

// Read drains r and returns its table. A zero delimiter selects
// DefaultDelimiter. Either the whole input loads or an error is returned.
func Read(r io.Reader, delimiter rune) (*Table, error) {
	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	// Row width is not checked against the header here; short rows fail
	// when the missing cell is accessed.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Reason: "missing header row"}
	}
	if err != nil {
		return nil, errors.Wrap(err, "mockrows: read header")
	}
	columns, err := ParseHeader(header)
	if err != nil {
		return nil, err
	}

	t := &Table{Columns: columns}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "mockrows: read row %d", len(t.Rows)+1)
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}

// ParseHeader turns header cells into column descriptors.
func ParseHeader(header []string) ([]Column, error) {
	columns := make([]Column, 0, len(header))
	for i, cell := range header {
		pos := i + 1
		fields := strings.Fields(cell)
		if len(fields) != 2 {
			return nil, &SchemaError{
				Position: pos,
				Cell:     cell,
				Reason:   "want \"<name> <TYPE>\"",
			}
		}
		typ, ok := sqltype.Parse(fields[1])
		if !ok {
			return nil, &SchemaError{
				Position: pos,
				Cell:     cell,
				Reason:   fmt.Sprintf("unknown type %q", fields[1]),
			}
		}
		columns = append(columns, Column{
			Name:     fields[0],
			Type:     typ,
			Position: pos,
		})
	}
	return columns, nil
}
