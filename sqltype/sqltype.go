// Package sqltype defines the catalog of column types a fixture header may
// declare. Names follow the JDBC canonical spelling so fixture files stay
// interchangeable with their JVM counterparts.
package sqltype

import "strings"

// Type is the declared type of a fixture column.
type Type int

const (
	Unknown Type = iota
	Bit
	TinyInt
	SmallInt
	Integer
	BigInt
	Float
	Real
	Double
	Numeric
	Decimal
	Char
	VarChar
	LongVarChar
	Date
	Time
	Timestamp
	Binary
	VarBinary
	LongVarBinary
	Null
	Other
	JavaObject
	Distinct
	Struct
	Array
	Blob
	Clob
	Ref
	DataLink
	Boolean
	RowID
	NChar
	NVarChar
	LongNVarChar
	NClob
	SQLXML
	RefCursor
	TimeWithTimezone
	TimestampWithTimezone
)

// Family groups types that share accessor behavior.
type Family int

const (
	// Ignored types have no accessor wiring at all.
	Ignored Family = iota
	IntegerFamily
	FloatingFamily
	BooleanFamily
	TextFamily
	BinaryFamily
	// Unsupported types are wired but never produce a value.
	Unsupported
)

type info struct {
	name   string
	code   int
	family Family
}

var catalog = map[Type]info{
	Bit:                   {"BIT", -7, BooleanFamily},
	TinyInt:               {"TINYINT", -6, IntegerFamily},
	SmallInt:              {"SMALLINT", 5, IntegerFamily},
	Integer:               {"INTEGER", 4, IntegerFamily},
	BigInt:                {"BIGINT", -5, IntegerFamily},
	Float:                 {"FLOAT", 6, FloatingFamily},
	Real:                  {"REAL", 7, FloatingFamily},
	Double:                {"DOUBLE", 8, FloatingFamily},
	Numeric:               {"NUMERIC", 2, Unsupported},
	Decimal:               {"DECIMAL", 3, Unsupported},
	Char:                  {"CHAR", 1, TextFamily},
	VarChar:               {"VARCHAR", 12, TextFamily},
	LongVarChar:           {"LONGVARCHAR", -1, TextFamily},
	Date:                  {"DATE", 91, Unsupported},
	Time:                  {"TIME", 92, Unsupported},
	Timestamp:             {"TIMESTAMP", 93, Unsupported},
	Binary:                {"BINARY", -2, BinaryFamily},
	VarBinary:             {"VARBINARY", -3, BinaryFamily},
	LongVarBinary:         {"LONGVARBINARY", -4, BinaryFamily},
	Null:                  {"NULL", 0, Ignored},
	Other:                 {"OTHER", 1111, Ignored},
	JavaObject:            {"JAVA_OBJECT", 2000, Ignored},
	Distinct:              {"DISTINCT", 2001, Ignored},
	Struct:                {"STRUCT", 2002, Ignored},
	Array:                 {"ARRAY", 2003, Unsupported},
	Blob:                  {"BLOB", 2004, Unsupported},
	Clob:                  {"CLOB", 2005, Unsupported},
	Ref:                   {"REF", 2006, Unsupported},
	DataLink:              {"DATALINK", 70, Ignored},
	Boolean:               {"BOOLEAN", 16, BooleanFamily},
	RowID:                 {"ROWID", -8, Unsupported},
	NChar:                 {"NCHAR", -15, TextFamily},
	NVarChar:              {"NVARCHAR", -9, TextFamily},
	LongNVarChar:          {"LONGNVARCHAR", -16, TextFamily},
	NClob:                 {"NCLOB", 2011, Unsupported},
	SQLXML:                {"SQLXML", 2009, Unsupported},
	RefCursor:             {"REF_CURSOR", 2012, Ignored},
	TimeWithTimezone:      {"TIME_WITH_TIMEZONE", 2013, Unsupported},
	TimestampWithTimezone: {"TIMESTAMP_WITH_TIMEZONE", 2014, Unsupported},
}

var byName = func() map[string]Type {
	m := make(map[string]Type, len(catalog))
	for t, i := range catalog {
		m[i.name] = t
	}
	return m
}()

// Parse returns the type whose canonical name is exactly s.
// Matching is case-sensitive.
func Parse(s string) (Type, bool) {
	t, ok := byName[s]
	return t, ok
}

// String returns the canonical name, e.g. "INTEGER".
func (t Type) String() string {
	if i, ok := catalog[t]; ok {
		return i.name
	}
	return "UNKNOWN"
}

// Code returns the JDBC vendor type number.
func (t Type) Code() int {
	return catalog[t].code
}

// Family returns the accessor family of t. Unknown types are Ignored.
func (t Type) Family() Family {
	return catalog[t].family
}

// Valid reports whether t is a member of the catalog.
func (t Type) Valid() bool {
	_, ok := catalog[t]
	return ok
}

func (f Family) String() string {
	switch f {
	case IntegerFamily:
		return "integer"
	case FloatingFamily:
		return "floating"
	case BooleanFamily:
		return "boolean"
	case TextFamily:
		return "text"
	case BinaryFamily:
		return "binary"
	case Unsupported:
		return "unsupported"
	}
	return "ignored"
}

// Numeric reports whether the family carries integer or floating point data.
func (f Family) Numeric() bool {
	return f == IntegerFamily || f == FloatingFamily
}

var aliases = map[string]Type{
	"INT":                 Integer,
	"INT4":                Integer,
	"MEDIUMINT":           Integer,
	"SERIAL":              Integer,
	"INT2":                SmallInt,
	"SMALLSERIAL":         SmallInt,
	"INT8":                BigInt,
	"BIGSERIAL":           BigInt,
	"BOOL":                Boolean,
	"FLOAT4":              Real,
	"FLOAT8":              Double,
	"DOUBLE PRECISION":    Double,
	"BPCHAR":              Char,
	"STRING":              VarChar,
	"TEXT":                VarChar,
	"NAME":                VarChar,
	"UUID":                VarChar,
	"JSON":                VarChar,
	"JSONB":               VarChar,
	"ENUM":                VarChar,
	"TINYTEXT":            VarChar,
	"MEDIUMTEXT":          LongVarChar,
	"LONGTEXT":            LongVarChar,
	"BYTEA":               VarBinary,
	"TINYBLOB":            Blob,
	"MEDIUMBLOB":          Blob,
	"LONGBLOB":            Blob,
	"DATETIME":            Timestamp,
	"TIMESTAMPTZ":         TimestampWithTimezone,
	"TIMETZ":              TimeWithTimezone,
	"YEAR":                SmallInt,
	"MAP":                 Struct,
	"UNIONTYPE":           Struct,
	"INT64":               BigInt,
	"INT32":               Integer,
	"INT16":               SmallInt,
	"UINT8":               SmallInt,
	"UINT16":              Integer,
	"UINT32":              BigInt,
	"FLOAT64":             Double,
	"FLOAT32":             Real,
	"[]UINT8":             VarBinary,
	"TIME.TIME":           Timestamp,
	"INTERVAL_YEAR_MONTH": Other,
	"INTERVAL_DAY_TIME":   Other,
}

// FromDatabaseTypeName maps a driver reported type name (for example
// "int4", "VARCHAR(32)", "BIGINT UNSIGNED", Hive's "STRING" or a Go type
// name such as "float64") to the catalog. Names that cannot be mapped fall back to VarChar, which keeps
// the cell text readable through every text accessor.
func FromDatabaseTypeName(name string) Type {
	n := strings.ToUpper(strings.TrimSpace(name))
	if i := strings.IndexByte(n, '('); i >= 0 {
		n = strings.TrimSpace(n[:i])
	}
	n = strings.TrimSuffix(n, "_TYPE")
	n = strings.TrimSpace(strings.TrimSuffix(n, "UNSIGNED"))
	if strings.HasPrefix(n, "_") || strings.HasSuffix(n, "[]") {
		return Array
	}
	if t, ok := byName[n]; ok {
		return t
	}
	if t, ok := aliases[n]; ok {
		return t
	}
	return VarChar
}
