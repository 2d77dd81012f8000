// Package xmlcodec writes rows as an XML document with one <row> element per
// row and one child element per non-NULL column.
package xmlcodec

import (
	"encoding/xml"
	"io"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-data-exporter/mockrows/scanner"
	"github.com/go-data-exporter/mockrows/tostring"
)

type xmlCodec struct {
	customMapper     map[reflect.Type]func(any, scanner.Metadata) tostring.String
	preProcessorFunc func(rowID int, row []string) ([]string, bool)
	root             string
	limit            int
}

type Option func(*xmlCodec)

func New(opts ...Option) *xmlCodec {
	c := &xmlCodec{
		customMapper: make(map[reflect.Type]func(any, scanner.Metadata) tostring.String),
		root:         "data",
		limit:        -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithCustomType registers a string conversion for values of type T.
func WithCustomType[T any](fn func(v T, metadata scanner.Metadata) tostring.String) Option {
	return func(c *xmlCodec) {
		var zero T
		typ := reflect.TypeOf(zero)
		if c.customMapper == nil {
			c.customMapper = make(map[reflect.Type]func(any, scanner.Metadata) tostring.String)
		}
		c.customMapper[typ] = func(v any, metadata scanner.Metadata) tostring.String {
			return fn(v.(T), metadata)
		}
	}
}

// WithPreProcessorFunc sets a function to rewrite or drop each row.
func WithPreProcessorFunc(fn func(rowID int, row []string) ([]string, bool)) Option {
	return func(c *xmlCodec) {
		c.preProcessorFunc = fn
	}
}

// WithRootElement names the document element. The default is "data".
func WithRootElement(name string) Option {
	return func(c *xmlCodec) {
		c.root = elementName(name)
	}
}

// WithLimit caps the number of rows written. Negative means unlimited.
func WithLimit(limit int) Option {
	return func(c *xmlCodec) {
		c.limit = limit
	}
}

// Write writes the rows as XML. Nothing is written when there are no rows.
func (c *xmlCodec) Write(rows scanner.Rows, writer io.Writer) error {
	if c.limit == 0 {
		return nil
	}
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = elementName(col.Name())
	}
	w := &errWriter{w: writer}
	rowID := 0
	for rows.Next() {
		values, err := rows.ScanRow()
		if err != nil {
			return err
		}
		row := make([]string, len(values))
		null := make([]bool, len(values))
		for i := range values {
			s := c.toString(values[i], scanner.Metadata{
				RowID:  rowID + 1,
				Driver: rows.Driver(),
				Column: cols[i],
			})
			row[i], null[i] = s.String, s.IsNULL
		}

		writeRow := true
		if c.preProcessorFunc != nil {
			row, writeRow = c.preProcessorFunc(rowID+1, row)
		}
		if !writeRow {
			continue
		}
		if rowID == 0 {
			w.write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` + "\n<" + c.root + ">\n"))
		}
		w.write([]byte("<row>"))
		for i := range row {
			if i < len(null) && null[i] {
				continue
			}
			w.write([]byte("<" + names[i] + ">"))
			if w.err == nil {
				w.err = xml.EscapeText(w.w, []byte(row[i]))
			}
			w.write([]byte("</" + names[i] + ">"))
		}
		w.write([]byte("</row>\n"))
		rowID++
		if w.err != nil {
			return w.err
		}
		if c.limit >= 0 && rowID >= c.limit {
			break
		}
	}
	if rowID > 0 {
		w.write([]byte("</" + c.root + ">\n"))
	}
	if w.err != nil {
		return w.err
	}
	return rows.Err()
}

func (c *xmlCodec) toString(v any, metadata scanner.Metadata) tostring.String {
	if v == nil {
		return tostring.String{IsNULL: true}
	}
	if fn, ok := c.customMapper[reflect.TypeOf(v)]; ok {
		return fn(v, metadata)
	}
	return tostring.ToString(v)
}

// elementName replaces characters that are not allowed in an XML name
// with '_'.
func elementName(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			r = '_'
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

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
