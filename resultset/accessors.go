package resultset

import (
	"database/sql"
	"time"
)

// Every accessor has a position form and a ByName form. Both fail with
// ErrNoCursorPosition when there is no current row. A cell that cannot be
// converted, or a column whose type does not populate the representation,
// yields the absent value (Valid == false, or nil) and no error.

func (rs *ResultSet) Bool(pos int) (sql.Null[bool], error) {
	s, ok, err := rs.cell(pos, reprBool)
	if err != nil || !ok {
		return sql.Null[bool]{}, err
	}
	return sql.Null[bool]{V: parseBool(s), Valid: true}, nil
}

func (rs *ResultSet) Int8(pos int) (sql.Null[int8], error) {
	return intAt[int8](rs, pos, 8)
}

func (rs *ResultSet) Int16(pos int) (sql.Null[int16], error) {
	return intAt[int16](rs, pos, 16)
}

func (rs *ResultSet) Int32(pos int) (sql.Null[int32], error) {
	return intAt[int32](rs, pos, 32)
}

func (rs *ResultSet) Int64(pos int) (sql.Null[int64], error) {
	return intAt[int64](rs, pos, 64)
}

func (rs *ResultSet) Float32(pos int) (sql.Null[float32], error) {
	return floatAt[float32](rs, pos, 32)
}

func (rs *ResultSet) Float64(pos int) (sql.Null[float64], error) {
	return floatAt[float64](rs, pos, 64)
}

// Bytes returns the UTF-8 bytes of a binary or text cell.
func (rs *ResultSet) Bytes(pos int) ([]byte, error) {
	s, ok, err := rs.cell(pos, reprBytes)
	if err != nil || !ok {
		return nil, err
	}
	return []byte(s), nil
}

// Text returns the cell verbatim.
func (rs *ResultSet) Text(pos int) (sql.Null[string], error) {
	s, ok, err := rs.cell(pos, reprText)
	if err != nil || !ok {
		return sql.Null[string]{}, err
	}
	return sql.Null[string]{V: s, Valid: true}, nil
}

// Time is wired for every column but date and time parsing is not
// implemented, so the result is always absent.
func (rs *ResultSet) Time(pos int) (sql.Null[time.Time], error) {
	_, _, err := rs.cell(pos, 0)
	return sql.Null[time.Time]{}, err
}

// Opaque stands in for decimal, LOB, array, ref, rowid and XML values.
// It always returns nil.
func (rs *ResultSet) Opaque(pos int) (any, error) {
	_, _, err := rs.cell(pos, 0)
	return nil, err
}

// Object returns the cell text for any column type.
func (rs *ResultSet) Object(pos int) (any, error) {
	s, _, err := rs.cell(pos, 0)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Value returns the cell as the Go value matching its declared type:
// int64, float64, bool, []byte or string. Numeric cells that do not parse
// are nil. Unsupported and ignored types return the cell text.
func (rs *ResultSet) Value(pos int) (any, error) {
	s, _, err := rs.cell(pos, 0)
	if err != nil {
		return nil, err
	}
	return natural(s, rs.columns[pos-1].Type), nil
}

func (rs *ResultSet) BoolByName(name string) (sql.Null[bool], error) {
	return byName(rs, name, rs.Bool)
}

func (rs *ResultSet) Int8ByName(name string) (sql.Null[int8], error) {
	return byName(rs, name, rs.Int8)
}

func (rs *ResultSet) Int16ByName(name string) (sql.Null[int16], error) {
	return byName(rs, name, rs.Int16)
}

func (rs *ResultSet) Int32ByName(name string) (sql.Null[int32], error) {
	return byName(rs, name, rs.Int32)
}

func (rs *ResultSet) Int64ByName(name string) (sql.Null[int64], error) {
	return byName(rs, name, rs.Int64)
}

func (rs *ResultSet) Float32ByName(name string) (sql.Null[float32], error) {
	return byName(rs, name, rs.Float32)
}

func (rs *ResultSet) Float64ByName(name string) (sql.Null[float64], error) {
	return byName(rs, name, rs.Float64)
}

func (rs *ResultSet) BytesByName(name string) ([]byte, error) {
	return byName(rs, name, rs.Bytes)
}

func (rs *ResultSet) TextByName(name string) (sql.Null[string], error) {
	return byName(rs, name, rs.Text)
}

func (rs *ResultSet) TimeByName(name string) (sql.Null[time.Time], error) {
	return byName(rs, name, rs.Time)
}

func (rs *ResultSet) OpaqueByName(name string) (any, error) {
	return byName(rs, name, rs.Opaque)
}

func (rs *ResultSet) ObjectByName(name string) (any, error) {
	return byName(rs, name, rs.Object)
}

func (rs *ResultSet) ValueByName(name string) (any, error) {
	return byName(rs, name, rs.Value)
}

func byName[T any](rs *ResultSet, name string, get func(int) (T, error)) (T, error) {
	pos, err := rs.lookup(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return get(pos)
}

func intAt[T int8 | int16 | int32 | int64](rs *ResultSet, pos, bits int) (sql.Null[T], error) {
	s, ok, err := rs.cell(pos, reprInt)
	if err != nil || !ok {
		return sql.Null[T]{}, err
	}
	v, ok := parseInt[T](s, bits)
	return sql.Null[T]{V: v, Valid: ok}, nil
}

func floatAt[T float32 | float64](rs *ResultSet, pos, bits int) (sql.Null[T], error) {
	s, ok, err := rs.cell(pos, reprFloat)
	if err != nil || !ok {
		return sql.Null[T]{}, err
	}
	v, ok := parseFloat[T](s, bits)
	return sql.Null[T]{V: v, Valid: ok}, nil
}
