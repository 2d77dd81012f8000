// Package tostring converts arbitrary Go values into their text form while
// detecting NULL or empty values. Codecs use it to turn scanned values back
// into fixture cells.
package tostring

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var jsonStd = jsoniter.ConfigCompatibleWithStandardLibrary

// String is a text value with a flag marking NULL.
type String struct {
	String string
	IsNULL bool
}

// ToString converts v to a String.
//
// Primitive types, []byte and time.Time are formatted directly. Values
// implementing driver.Valuer (sql.NullInt64, sql.Null[T], ...) are unwrapped
// first. json.Marshaler, fmt.Stringer and finally JSON encoding are tried
// for everything else. nil, the zero time and JSON null, [] or {} are NULL.
func ToString(v any) String {
	if v == nil {
		return String{"", true}
	}
	switch v := v.(type) {
	case string:
		return String{v, false}
	case []byte:
		return String{string(v), false}
	case bool:
		return String{strconv.FormatBool(v), false}
	case int:
		return String{strconv.Itoa(v), false}
	case int8:
		return String{strconv.FormatInt(int64(v), 10), false}
	case int16:
		return String{strconv.FormatInt(int64(v), 10), false}
	case int32:
		return String{strconv.FormatInt(int64(v), 10), false}
	case int64:
		return String{strconv.FormatInt(v, 10), false}
	case uint:
		return String{strconv.FormatUint(uint64(v), 10), false}
	case uint8:
		return String{strconv.FormatUint(uint64(v), 10), false}
	case uint16:
		return String{strconv.FormatUint(uint64(v), 10), false}
	case uint32:
		return String{strconv.FormatUint(uint64(v), 10), false}
	case uint64:
		return String{strconv.FormatUint(v, 10), false}
	case float32:
		return String{strconv.FormatFloat(float64(v), 'f', -1, 32), false}
	case float64:
		return String{strconv.FormatFloat(v, 'f', -1, 64), false}
	case time.Time:
		if v.IsZero() {
			return String{"", true}
		}
		return String{v.Format(time.RFC3339Nano), false}
	}
	if valuer, ok := v.(driver.Valuer); ok {
		dv, err := valuer.Value()
		if err != nil {
			return String{fmt.Sprintf("%v", v), false}
		}
		return ToString(dv)
	}
	if jsonMarshaler, ok := v.(json.Marshaler); ok {
		if jsonData, err := jsonMarshaler.MarshalJSON(); err == nil {
			return fromJSON(jsonData)
		}
	}
	if fmtStringer, ok := v.(fmt.Stringer); ok {
		return String{fmtStringer.String(), false}
	}
	if jsonData, err := jsonStd.Marshal(v); err == nil {
		return fromJSON(jsonData)
	}
	return String{fmt.Sprintf("%v", v), false}
}

func fromJSON(data []byte) String {
	s := strings.Trim(string(data), `"`)
	if s == "[]" || s == "{}" || s == "null" {
		return String{"", true}
	}
	return String{s, false}
}
