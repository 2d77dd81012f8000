// Package csvcodec writes rows as delimited text. With a typed header the
// output is a fixture that mockrows.Load reads back.
package csvcodec

import (
	"encoding/csv"
	"io"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-data-exporter/mockrows/scanner"
	"github.com/go-data-exporter/mockrows/sqltype"
	"github.com/go-data-exporter/mockrows/tostring"
)

type csvCodec struct {
	customMapper     map[reflect.Type]func(any, scanner.Metadata) tostring.String
	preProcessorFunc func(row []string) ([]string, bool)
	delimiter        rune
	useCRLF          bool
	writeHeader      bool
	typedHeader      bool
	customHeader     []string
	nullValue        string
	limit            int
}

type Option func(*csvCodec)

func New(opts ...Option) *csvCodec {
	cw := &csvCodec{
		customMapper: make(map[reflect.Type]func(any, scanner.Metadata) tostring.String),
		delimiter:    ',',
		writeHeader:  true,
		limit:        -1,
	}
	for _, opt := range opts {
		opt(cw)
	}
	return cw
}

func WithCustomType[T any](fn func(v T, metadata scanner.Metadata) tostring.String) Option {
	return func(cw *csvCodec) {
		var zero T
		typ := reflect.TypeOf(zero)
		if cw.customMapper == nil {
			cw.customMapper = make(map[reflect.Type]func(any, scanner.Metadata) tostring.String)
		}
		cw.customMapper[typ] = func(v any, metadata scanner.Metadata) tostring.String {
			return fn(v.(T), metadata)
		}
	}
}

func WithPreProcessorFunc(fn func(row []string) ([]string, bool)) Option {
	return func(cw *csvCodec) {
		cw.preProcessorFunc = fn
	}
}

func WithCustomDelimiter(delimiter rune) Option {
	return func(cw *csvCodec) {
		cw.delimiter = delimiter
	}
}

func WithCRLF(useCRLF bool) Option {
	return func(cw *csvCodec) {
		cw.useCRLF = useCRLF
	}
}

func WithHeader(writeHeader bool) Option {
	return func(cw *csvCodec) {
		cw.writeHeader = writeHeader
	}
}

// WithTypedHeader writes header cells as "<name> <TYPE>", mapping each
// column's database type name onto the fixture type catalog.
func WithTypedHeader(typedHeader bool) Option {
	return func(cw *csvCodec) {
		cw.typedHeader = typedHeader
	}
}

func WithCustomHeader(customHeader []string) Option {
	return func(cw *csvCodec) {
		cw.customHeader = customHeader
	}
}

func WithCustomNULL(nullValue string) Option {
	return func(cw *csvCodec) {
		cw.nullValue = nullValue
	}
}

// WithLimit caps the number of data rows written. Negative means unlimited.
func WithLimit(limit int) Option {
	return func(cw *csvCodec) {
		cw.limit = limit
	}
}

func (cs *csvCodec) Write(rows scanner.Rows, writer io.Writer) error {
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	header := cs.header(cols)
	if cs.customHeader != nil {
		if len(cs.customHeader) != len(cols) {
			return errors.New("invalid header length")
		}
		header = cs.customHeader
	}
	w := csv.NewWriter(writer)
	if cs.delimiter != 0 {
		w.Comma = cs.delimiter
	}
	w.UseCRLF = cs.useCRLF

	if cs.writeHeader {
		if err = w.Write(header); err != nil {
			return errors.Wrap(err, "failed to write headers")
		}
	}
	rowID := 0
	for cs.limit < 0 || rowID < cs.limit {
		if !rows.Next() {
			break
		}
		values, err := rows.ScanRow()
		if err != nil {
			return err
		}
		rowID++
		row := make([]string, len(values))
		for i := range values {
			row[i] = cs.toString(values[i], scanner.Metadata{
				RowID:  rowID,
				Driver: rows.Driver(),
				Column: cols[i],
			})
		}
		writeRow := true
		if cs.preProcessorFunc != nil {
			row, writeRow = cs.preProcessorFunc(row)
		}
		if writeRow {
			if err := w.Write(row); err != nil {
				return errors.Wrapf(err, "failed to write row %d", rowID)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return rows.Err()
}

func (cs *csvCodec) header(cols []scanner.Column) []string {
	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.Name()
		if cs.typedHeader {
			// The fixture header splits on whitespace, so names must not contain any.
			name := strings.Join(strings.Fields(col.Name()), "_")
			header[i] = name + " " + sqltype.FromDatabaseTypeName(col.DatabaseTypeName()).String()
		}
	}
	return header
}

func (cs *csvCodec) toString(v any, metadata scanner.Metadata) string {
	if v == nil {
		return cs.nullValue
	}
	var s tostring.String
	if fn, ok := cs.customMapper[reflect.TypeOf(v)]; ok {
		s = fn(v, metadata)
	} else {
		s = tostring.ToString(v)
	}
	if s.IsNULL {
		return cs.nullValue
	}
	return s.String
}
