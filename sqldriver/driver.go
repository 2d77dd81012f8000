// Package sqldriver serves fixture files through database/sql so code that
// takes a *sql.DB can be tested against fixtures.
//
//	import _ "github.com/go-data-exporter/mockrows/sqldriver"
//
//	db, _ := sql.Open("mockrows", "testdata/users.csv?delimiter=;")
//	rows, _ := db.Query("SELECT * FROM users") // the query text is ignored
//
// Every query returns all rows of the fixture from a fresh cursor.
// Statements that write are rejected with ErrReadOnly.
package sqldriver

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/go-data-exporter/mockrows"
	"github.com/go-data-exporter/mockrows/loader"
)

// DriverName is the name the driver registers with database/sql.
const DriverName = "mockrows"

// ErrReadOnly is returned for Exec, transactions and bound arguments.
var ErrReadOnly = errors.New("mockrows: fixtures are read-only")

func init() {
	sql.Register(DriverName, &Driver{})
}

var (
	_ driver.Driver        = (*Driver)(nil)
	_ driver.DriverContext = (*Driver)(nil)
	_ driver.Connector     = (*connector)(nil)
)

// Driver opens connections whose DSN is a fixture path, optionally
// followed by "?delimiter=<rune>".
type Driver struct{}

func (d *Driver) Open(dsn string) (driver.Conn, error) {
	c, err := d.OpenConnector(dsn)
	if err != nil {
		return nil, err
	}
	return c.Connect(context.Background())
}

func (d *Driver) OpenConnector(dsn string) (driver.Connector, error) {
	path, query, _ := strings.Cut(dsn, "?")
	if path == "" {
		return nil, errors.WithMessage(mockrows.ErrNoInput, "empty DSN")
	}
	opts := []mockrows.Option{mockrows.WithPath(path)}
	// Parsed by hand: url.ParseQuery rejects a bare ';', a common delimiter.
	for _, kv := range strings.Split(query, "&") {
		key, value, _ := strings.Cut(kv, "=")
		switch key {
		case "":
		case "delimiter":
			delim, err := url.PathUnescape(value)
			if err != nil {
				return nil, errors.Wrapf(err, "mockrows: parse DSN %q", dsn)
			}
			r, size := utf8.DecodeRuneInString(delim)
			if size == 0 || size != len(delim) {
				return nil, errors.Wrapf(mockrows.ErrInvalidDelimiter, "%q", delim)
			}
			opts = append(opts, mockrows.WithDelimiter(r))
		default:
			return nil, errors.Errorf("mockrows: unknown DSN parameter %q", key)
		}
	}
	return &connector{driver: d, load: func() (*loader.Table, error) {
		return mockrows.LoadTable(opts...)
	}}, nil
}

// NewConnector serves an already loaded table. Use it with sql.OpenDB for
// fixtures that do not live on disk:
//
//	t, _ := mockrows.LoadTable(mockrows.WithReader(strings.NewReader(data)))
//	db := sql.OpenDB(sqldriver.NewConnector(t))
func NewConnector(t *loader.Table) driver.Connector {
	return &connector{driver: &Driver{}, load: func() (*loader.Table, error) {
		return t, nil
	}}
}

type connector struct {
	driver driver.Driver
	load   func() (*loader.Table, error)
}

func (c *connector) Connect(context.Context) (driver.Conn, error) {
	return &conn{load: c.load}, nil
}

func (c *connector) Driver() driver.Driver {
	return c.driver
}
