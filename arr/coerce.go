package arr

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ToNumber converts v to a float64 the way arithmetic would:
// nil and false are 0, true is 1, numeric strings are parsed, and any other
// string, array or unsupported value counts as 0.
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		f, _ := parseNumeric(x)
		return f
	case Key:
		if x.isStr {
			f, _ := parseNumeric(x.str)
			return f
		}
		return float64(x.num)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}

// IsNumeric reports whether v is a number or a numeric string.
func IsNumeric(v any) bool {
	_, ok := number(v)
	return ok
}

// number returns v as a float64 when v is a Go number or a numeric string.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case string:
		return parseNumeric(x)
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		f, err := cast.ToFloat64E(x)
		return f, err == nil
	}
	return 0, false
}

// integer returns v as an int64 when v is a Go signed or small unsigned
// integer, so that large values compare without float rounding.
func integer(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	}
	return 0, false
}

// parseNumeric parses s when it is a decimal number, optionally surrounded
// by whitespace. Hexadecimal, "inf", "nan" and digit separators are rejected.
func parseNumeric(s string) (float64, bool) {
	s = strings.Trim(s, " \t\n\r\v\f")
	if s == "" {
		return 0, false
	}
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return 0, false
		}
	}
	if i != len(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ToString converts v to its string form: nil is "", true is "1", false is
// "", whole floats print without a fraction, and arrays print as "Array".
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return ""
	case Key:
		return x.String()
	case float32:
		return formatFloat(float64(x))
	case float64:
		return formatFloat(x)
	}
	if _, ok := asArray(v); ok {
		return "Array"
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return reflect.ValueOf(v).String()
	}
	return s
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'G', -1, 64)
}

// ToBool reports the truthiness of v: nil, false, zero numbers, "" and "0",
// and empty arrays are false; everything else is true.
func ToBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != "" && x != "0"
	case Key:
		if x.isStr {
			return x.str != "" && x.str != "0"
		}
		return x.num != 0
	}
	if f, ok := number(v); ok {
		return f != 0
	}
	if m, ok := asArray(v); ok {
		return m.Len() > 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}
