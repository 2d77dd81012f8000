package resultset

import (
	"database/sql"
	"time"

	"github.com/go-data-exporter/mockrows/sqltype"
)

// Queryable is the read API of a tabular query result: column metadata,
// a forward-only cursor and typed column accessors. Code under test should
// depend on this interface so fixtures can stand in for live results.
type Queryable interface {
	ColumnCount() int
	ColumnName(pos int) (string, error)
	ColumnType(pos int) (sqltype.Type, error)
	FindColumn(name string) (int, error)

	Next() bool

	Bool(pos int) (sql.Null[bool], error)
	Int8(pos int) (sql.Null[int8], error)
	Int16(pos int) (sql.Null[int16], error)
	Int32(pos int) (sql.Null[int32], error)
	Int64(pos int) (sql.Null[int64], error)
	Float32(pos int) (sql.Null[float32], error)
	Float64(pos int) (sql.Null[float64], error)
	Bytes(pos int) ([]byte, error)
	Text(pos int) (sql.Null[string], error)
	Time(pos int) (sql.Null[time.Time], error)
	Opaque(pos int) (any, error)
	Object(pos int) (any, error)

	BoolByName(name string) (sql.Null[bool], error)
	Int8ByName(name string) (sql.Null[int8], error)
	Int16ByName(name string) (sql.Null[int16], error)
	Int32ByName(name string) (sql.Null[int32], error)
	Int64ByName(name string) (sql.Null[int64], error)
	Float32ByName(name string) (sql.Null[float32], error)
	Float64ByName(name string) (sql.Null[float64], error)
	BytesByName(name string) ([]byte, error)
	TextByName(name string) (sql.Null[string], error)
	TimeByName(name string) (sql.Null[time.Time], error)
	OpaqueByName(name string) (any, error)
	ObjectByName(name string) (any, error)
}
