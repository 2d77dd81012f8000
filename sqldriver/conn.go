package sqldriver

import (
	"context"
	"database/sql/driver"

	"github.com/go-data-exporter/mockrows/loader"
	"github.com/go-data-exporter/mockrows/resultset"
)

var (
	_ driver.QueryerContext = (*conn)(nil)
	_ driver.ExecerContext  = (*conn)(nil)
	_ driver.Stmt           = (*stmt)(nil)
)

type conn struct {
	load func() (*loader.Table, error)
}

func (c *conn) Prepare(query string) (driver.Stmt, error) {
	return &stmt{conn: c}, nil
}

func (c *conn) Close() error {
	return nil
}

func (c *conn) Begin() (driver.Tx, error) {
	return nil, ErrReadOnly
}

func (c *conn) QueryContext(ctx context.Context, _ string, args []driver.NamedValue) (driver.Rows, error) {
	if len(args) > 0 {
		return nil, ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.query()
}

func (c *conn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	return nil, ErrReadOnly
}

func (c *conn) query() (driver.Rows, error) {
	t, err := c.load()
	if err != nil {
		return nil, err
	}
	return newRows(resultset.New(t)), nil
}

type stmt struct {
	conn *conn
}

func (s *stmt) Close() error {
	return nil
}

// NumInput returns 0 so database/sql rejects bound arguments before they
// reach the driver.
func (s *stmt) NumInput() int {
	return 0
}

func (s *stmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, ErrReadOnly
}

func (s *stmt) Query([]driver.Value) (driver.Rows, error) {
	return s.conn.query()
}
