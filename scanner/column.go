package scanner

import "reflect"

type Column interface {
	Name() string
	Length() (length int64, ok bool)
	DecimalSize() (precision, scale int64, ok bool)
	ScanType() reflect.Type
	Nullable() (nullable, ok bool)
	DatabaseTypeName() string
}

// sliceColumn describes a column of an in-memory slice. Its database type
// name is the Go type of the value found in the first row.
type sliceColumn struct {
	index  int
	name   string
	goType reflect.Type
}

func (c *sliceColumn) Name() string {
	return c.name
}

func (c *sliceColumn) Length() (length int64, ok bool) {
	return 0, false
}

func (c *sliceColumn) DecimalSize() (precision, scale int64, ok bool) {
	return 0, 0, false
}

func (c *sliceColumn) ScanType() reflect.Type {
	return c.goType
}

func (c *sliceColumn) Nullable() (nullable, ok bool) {
	return c.goType == nil, true
}

func (c *sliceColumn) DatabaseTypeName() string {
	if c.goType == nil {
		return "nil"
	}
	return c.goType.String()
}
