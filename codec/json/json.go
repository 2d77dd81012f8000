package jsoncodec

import (
	"io"
	"reflect"

	jsoniter "github.com/json-iterator/go"

	"github.com/go-data-exporter/mockrows/scanner"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Option func(*jsonCodec)

type jsonCodec struct {
	customMapper     map[reflect.Type]func(any, scanner.Metadata) any
	preProcessorFunc func(rowID int, row map[string]any) (map[string]any, bool)
	newlineDelimited bool
	limit            int
}

// New returns a JSON codec. []byte values are written as strings because
// fixture binary cells hold text; register a custom type mapper for
// another encoding.
func New(opts ...Option) *jsonCodec {
	c := &jsonCodec{
		customMapper: map[reflect.Type]func(any, scanner.Metadata) any{
			reflect.TypeOf([]byte(nil)): func(v any, _ scanner.Metadata) any {
				return string(v.([]byte))
			},
		},
		limit: -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithPreProcessorFunc(fn func(rowID int, row map[string]any) (map[string]any, bool)) Option {
	return func(c *jsonCodec) {
		c.preProcessorFunc = fn
	}
}

// WithNewlineDelimited writes one object per line instead of an array.
func WithNewlineDelimited(isNewlineDelimited bool) Option {
	return func(c *jsonCodec) {
		c.newlineDelimited = isNewlineDelimited
	}
}

func WithCustomType[T any](fn func(v T, metadata scanner.Metadata) any) Option {
	return func(c *jsonCodec) {
		var zero T
		typ := reflect.TypeOf(zero)
		if c.customMapper == nil {
			c.customMapper = make(map[reflect.Type]func(any, scanner.Metadata) any)
		}
		c.customMapper[typ] = func(v any, metadata scanner.Metadata) any {
			return fn(v.(T), metadata)
		}
	}
}

func WithLimit(limit int) Option {
	return func(c *jsonCodec) {
		c.limit = limit
	}
}

// Write encodes rows. Array output is always well formed: an empty source
// produces "[]".
func (c *jsonCodec) Write(rows scanner.Rows, writer io.Writer) error {
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	w := &errWriter{w: writer}
	written := 0
	for c.limit < 0 || written < c.limit {
		if !rows.Next() {
			break
		}
		values, err := rows.ScanRow()
		if err != nil {
			return err
		}
		rowID := written + 1
		row := make(map[string]any, len(values))
		for i, col := range cols {
			row[col.Name()] = values[i]
			if fn, ok := c.customMapper[reflect.TypeOf(values[i])]; ok {
				row[col.Name()] = fn(values[i], scanner.Metadata{
					RowID:  rowID,
					Driver: rows.Driver(),
					Column: col,
				})
			}
		}
		writeRow := true
		if c.preProcessorFunc != nil {
			row, writeRow = c.preProcessorFunc(rowID, row)
		}
		if !writeRow {
			continue
		}
		data, err := json.Marshal(row)
		if err != nil {
			return err
		}
		switch {
		case c.newlineDelimited:
			w.write(data)
			w.write([]byte("\n"))
		case written == 0:
			w.write([]byte("[\n"))
			w.write(data)
		default:
			w.write([]byte(",\n"))
			w.write(data)
		}
		written++
		if w.err != nil {
			return w.err
		}
	}
	if !c.newlineDelimited {
		if written == 0 {
			w.write([]byte("[]\n"))
		} else {
			w.write([]byte("\n]\n"))
		}
	}
	if w.err != nil {
		return w.err
	}
	return rows.Err()
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(p []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(p)
}
