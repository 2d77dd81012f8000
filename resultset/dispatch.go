package resultset

import (
	"strconv"

	"github.com/spf13/cast"

	"github.com/go-data-exporter/mockrows/sqltype"
)

// repr is a native representation an accessor can produce.
type repr uint8

const (
	reprBool repr = 1 << iota
	reprInt
	reprFloat
	reprBytes
	reprText
)

// dispatch lists, per type family, the representations that are populated
// from the cell text. Any representation not listed yields the absent
// value. Unsupported and Ignored families populate nothing; Object is
// outside this table and always returns the cell text.
var dispatch = map[sqltype.Family]repr{
	sqltype.IntegerFamily:  reprInt | reprFloat | reprText,
	sqltype.FloatingFamily: reprInt | reprFloat | reprText,
	sqltype.BooleanFamily:  reprBool | reprText,
	sqltype.TextFamily:     reprText | reprBytes,
	sqltype.BinaryFamily:   reprBytes | reprText,
	sqltype.Unsupported:    0,
	sqltype.Ignored:        0,
}

func parseInt[T int8 | int16 | int32 | int64](s string, bits int) (T, bool) {
	v, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, false
	}
	return T(v), true
}

func parseFloat[T float32 | float64](s string, bits int) (T, bool) {
	v, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, false
	}
	return T(v), true
}

// parseBool never misses: text that is not a boolean literal reads as false.
func parseBool(s string) bool {
	return cast.ToBool(s)
}

// natural converts a cell to the Go value that best represents its family.
func natural(s string, t sqltype.Type) any {
	switch t.Family() {
	case sqltype.IntegerFamily:
		if v, ok := parseInt[int64](s, 64); ok {
			return v
		}
		return nil
	case sqltype.FloatingFamily:
		if v, ok := parseFloat[float64](s, 64); ok {
			return v
		}
		return nil
	case sqltype.BooleanFamily:
		return parseBool(s)
	case sqltype.BinaryFamily:
		return []byte(s)
	}
	return s
}
