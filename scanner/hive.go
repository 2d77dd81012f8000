package scanner

import (
	"context"
	"reflect"
	"strings"

	"github.com/beltran/gohive"
)

// DriverHive is the driver name reported for Hive cursors.
const DriverHive = "gohive"

type hiveRowsScanner struct {
	ctx            context.Context
	cursor         *gohive.Cursor
	columns        []Column
	currentRow     []any
	currentRowPtrs []any
}

// FromHiveCursor adapts a gohive cursor on which a query has been executed.
// ctx bounds every fetch.
func FromHiveCursor(ctx context.Context, cursor *gohive.Cursor) Rows {
	return &hiveRowsScanner{ctx: ctx, cursor: cursor}
}

func (h *hiveRowsScanner) Next() bool {
	return h.cursor.HasMore(h.ctx)
}

func (h *hiveRowsScanner) ScanRow() ([]any, error) {
	if h.columns == nil {
		if _, err := h.Columns(); err != nil {
			return nil, err
		}
	}
	if h.currentRow == nil {
		h.currentRow = make([]any, len(h.columns))
		h.currentRowPtrs = make([]any, len(h.columns))
		for i := range h.columns {
			h.currentRowPtrs[i] = &h.currentRow[i]
		}
	}
	h.cursor.FetchOne(h.ctx, h.currentRowPtrs...)
	if h.cursor.Err != nil {
		return nil, h.cursor.Err
	}
	return h.currentRow, nil
}

// Columns reads the cursor description. Hive qualifies names with the
// table ("t.id") and suffixes types with "_TYPE"; both are stripped.
func (h *hiveRowsScanner) Columns() ([]Column, error) {
	if h.columns != nil {
		return h.columns, nil
	}
	for _, c := range h.cursor.Description() {
		if len(c) == 0 {
			continue
		}
		col := &hiveColumn{name: c[0]}
		if len(c) > 1 {
			col.hiveType = c[1]
		}
		if _, name, ok := strings.Cut(col.name, "."); ok {
			col.name = name
		}
		col.hiveType = strings.TrimSuffix(col.hiveType, "_TYPE")
		h.columns = append(h.columns, col)
	}
	if h.cursor.Err != nil {
		return nil, h.cursor.Err
	}
	return h.columns, nil
}

func (h *hiveRowsScanner) Driver() string {
	return DriverHive
}

func (h *hiveRowsScanner) Err() error {
	return h.cursor.Error()
}

type hiveColumn struct {
	name     string
	hiveType string
}

func (c *hiveColumn) Name() string {
	return c.name
}

func (c *hiveColumn) Length() (length int64, ok bool) {
	return 0, false
}

func (c *hiveColumn) DecimalSize() (precision, scale int64, ok bool) {
	return 0, 0, false
}

func (c *hiveColumn) ScanType() reflect.Type {
	return nil
}

func (c *hiveColumn) Nullable() (nullable, ok bool) {
	return true, true
}

func (c *hiveColumn) DatabaseTypeName() string {
	return c.hiveType
}
