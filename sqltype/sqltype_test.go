package sqltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCatalog(t *testing.T) {
	for typ, i := range catalog {
		got, ok := Parse(i.name)
		assert.True(t, ok, i.name)
		assert.Equal(t, typ, got)
		assert.Equal(t, i.name, got.String())
	}
}

func TestParseIsCaseSensitive(t *testing.T) {
	_, ok := Parse("integer")
	assert.False(t, ok)
	_, ok = Parse("INT")
	assert.False(t, ok)
	_, ok = Parse("")
	assert.False(t, ok)
}

func TestFamilies(t *testing.T) {
	tests := []struct {
		family Family
		types  []Type
	}{
		{IntegerFamily, []Type{TinyInt, SmallInt, Integer, BigInt}},
		{FloatingFamily, []Type{Real, Float, Double}},
		{BooleanFamily, []Type{Boolean, Bit}},
		{TextFamily, []Type{Char, NChar, VarChar, NVarChar, LongVarChar, LongNVarChar}},
		{BinaryFamily, []Type{Binary, VarBinary, LongVarBinary}},
		{Unsupported, []Type{Numeric, Decimal, Date, Time, Timestamp, TimeWithTimezone,
			TimestampWithTimezone, Blob, Clob, NClob, Array, Ref, RowID, SQLXML}},
		{Ignored, []Type{JavaObject, Distinct, Struct, DataLink, RefCursor, Null, Other}},
	}
	n := 0
	for _, tt := range tests {
		for _, typ := range tt.types {
			assert.Equal(t, tt.family, typ.Family(), typ.String())
			n++
		}
	}
	assert.Equal(t, len(catalog), n, "every catalog entry belongs to a family")
}

func TestUnknown(t *testing.T) {
	assert.False(t, Unknown.Valid())
	assert.Equal(t, "UNKNOWN", Unknown.String())
	assert.Equal(t, Ignored, Unknown.Family())
	assert.True(t, Integer.Valid())
}

func TestCode(t *testing.T) {
	assert.Equal(t, 4, Integer.Code())
	assert.Equal(t, 12, VarChar.Code())
	assert.Equal(t, -7, Bit.Code())
	assert.Equal(t, 2014, TimestampWithTimezone.Code())
}

func TestFromDatabaseTypeName(t *testing.T) {
	tests := map[string]Type{
		"INTEGER":         Integer,
		"int4":            Integer,
		"INT_TYPE":        Integer,
		"BIGINT UNSIGNED": BigInt,
		"int8":            BigInt,
		"VARCHAR(32)":     VarChar,
		"STRING_TYPE":     VarChar,
		"text":            VarChar,
		"DECIMAL(10,2)":   Decimal,
		"bool":            Boolean,
		"float8":          Double,
		"double":          Double,
		"timestamptz":     TimestampWithTimezone,
		"DATETIME":        Timestamp,
		"_int4":           Array,
		"bytea":           VarBinary,
		"float64":         Double,
		"string":          VarChar,
		"[]uint8":         VarBinary,
		"geometry":        VarChar,
		"":                VarChar,
	}
	for name, want := range tests {
		assert.Equal(t, want, FromDatabaseTypeName(name), name)
	}
}
