// Package mockrows builds typed, cursor-driven query results from delimited
// fixture files so code written against a query-result interface can be
// tested without a database.
//
// A fixture is a delimited text file whose header cells carry a column name
// and a type:
//
//	id INTEGER,flag BOOLEAN,label VARCHAR
//	7,true,hello
//
// Load it with exactly one source option:
//
//	rs, err := mockrows.Load(mockrows.WithPath("testdata/users.csv"))
package mockrows

import (
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/go-data-exporter/mockrows/loader"
	"github.com/go-data-exporter/mockrows/resultset"
)

var (
	// ErrConfiguration is matched by every builder configuration error.
	ErrConfiguration = errors.New("mockrows: invalid configuration")

	ErrNoInput          = errors.WithMessage(ErrConfiguration, "no file, path or reader specified")
	ErrAmbiguousInput   = errors.WithMessage(ErrConfiguration, "more than one input specified")
	ErrInvalidDelimiter = errors.WithMessage(ErrConfiguration, "invalid delimiter")
)

type source struct {
	reader    io.Reader
	fsys      fs.FS
	name      string
	path      string
	delimiter rune
}

// Option configures Load.
type Option func(*source)

// WithReader reads the fixture from r. Load drains r but does not close it.
func WithReader(r io.Reader) Option {
	return func(s *source) {
		s.reader = r
	}
}

// WithFile reads the fixture called name from fsys.
func WithFile(fsys fs.FS, name string) Option {
	return func(s *source) {
		s.fsys = fsys
		s.name = name
	}
}

// WithPath reads the fixture from a file on disk.
func WithPath(path string) Option {
	return func(s *source) {
		s.path = path
	}
}

// WithDelimiter overrides the default comma cell separator.
func WithDelimiter(delimiter rune) Option {
	return func(s *source) {
		s.delimiter = delimiter
	}
}

// Load reads the configured source completely and returns a result set
// positioned before its first row. Files opened by Load are closed before
// it returns.
func Load(opts ...Option) (*resultset.ResultSet, error) {
	t, err := LoadTable(opts...)
	if err != nil {
		return nil, err
	}
	return resultset.New(t), nil
}

// LoadTable is Load without the cursor.
func LoadTable(opts ...Option) (*loader.Table, error) {
	s := &source{delimiter: loader.DefaultDelimiter}
	for _, opt := range opts {
		opt(s)
	}
	if !validDelimiter(s.delimiter) {
		return nil, errors.Wrapf(ErrInvalidDelimiter, "%q", s.delimiter)
	}
	r, closeFn, err := s.open()
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return loader.Read(r, s.delimiter)
}

func (s *source) open() (io.Reader, func() error, error) {
	n := 0
	if s.reader != nil {
		n++
	}
	if s.fsys != nil {
		n++
	}
	if s.path != "" {
		n++
	}
	switch {
	case n == 0:
		return nil, nil, ErrNoInput
	case n > 1:
		return nil, nil, ErrAmbiguousInput
	}
	nop := func() error { return nil }
	switch {
	case s.reader != nil:
		return s.reader, nop, nil
	case s.fsys != nil:
		f, err := s.fsys.Open(s.name)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "mockrows: open %s", s.name)
		}
		return f, f.Close, nil
	default:
		f, err := os.Open(s.path)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "mockrows: open %s", s.path)
		}
		return f, f.Close, nil
	}
}

// validDelimiter mirrors the separators encoding/csv accepts.
func validDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}
