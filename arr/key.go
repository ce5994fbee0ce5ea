package arr

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/spf13/cast"
)

// Key is an array key: either an integer or a string.
//
// The zero Key is the integer key 0. Key is comparable and can be used as a
// Go map key.
type Key struct {
	str   string
	num   int
	isStr bool
}

// IntKey returns the integer key n.
func IntKey(n int) Key { return Key{num: n} }

// StringKey returns the key for s. Strings holding a canonical decimal
// integer ("7", "-12", but not "07" or "+7") become integer keys.
func StringKey(s string) Key {
	if n, ok := canonicalInt(s); ok {
		return Key{num: n}
	}
	return Key{str: s, isStr: true}
}

// KeyOf normalises v into a Key:
//
//   - integers of any width become integer keys; unsigned values above
//     math.MaxInt become their decimal string key
//   - strings go through [StringKey]
//   - floats are truncated towards zero; NaN and values outside the int
//     range are invalid
//   - true and false become 1 and 0
//   - nil becomes the empty string key
//
// Named types are handled by their underlying kind. Any other value yields
// [ErrInvalidKey].
func KeyOf(v any) (Key, error) {
	switch x := v.(type) {
	case Key:
		return x, nil
	case nil:
		return StringKey(""), nil
	case string:
		return StringKey(x), nil
	case bool:
		if x {
			return IntKey(1), nil
		}
		return IntKey(0), nil
	case float32:
		return floatKey(float64(x))
	case float64:
		return floatKey(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return signedKey(n)
		}
		f, err := x.Float64()
		if err != nil {
			return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, x.String())
		}
		return floatKey(f)
	case int, int8, int16, int32, int64:
		n, err := cast.ToInt64E(x)
		if err != nil {
			return Key{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		return signedKey(n)
	case uint, uint8, uint16, uint32, uint64:
		n, err := cast.ToUint64E(x)
		if err != nil {
			return Key{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		return unsignedKey(n), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return StringKey(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedKey(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unsignedKey(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return floatKey(rv.Float())
	case reflect.Bool:
		return KeyOf(rv.Bool())
	}
	return Key{}, fmt.Errorf("%w: %T", ErrInvalidKey, v)
}

func floatKey(f float64) (Key, error) {
	// float64(math.MaxInt) rounds up to 2^63, which is already out of range.
	if math.IsNaN(f) || f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return Key{}, fmt.Errorf("%w: %v is outside the integer key range", ErrInvalidKey, f)
	}
	return IntKey(int(f)), nil
}

func signedKey(n int64) (Key, error) {
	if n > math.MaxInt || n < math.MinInt {
		return Key{}, fmt.Errorf("%w: %d is outside the integer key range", ErrInvalidKey, n)
	}
	return IntKey(int(n)), nil
}

// unsignedKey keeps values above math.MaxInt as their decimal string, the
// way out-of-range numeric strings stay string keys.
func unsignedKey(n uint64) Key {
	if n > math.MaxInt {
		return Key{str: strconv.FormatUint(n, 10), isStr: true}
	}
	return IntKey(int(n))
}

// canonicalInt reports whether s is the canonical decimal form of an int.
func canonicalInt(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" || (digits[0] == '0' && len(s) > 1) {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return !k.isStr }

// IsString reports whether k is a string key.
func (k Key) IsString() bool { return k.isStr }

// Int returns the integer value of k, or 0 for string keys.
func (k Key) Int() int { return k.num }

// String returns the key as a string. Integer keys are formatted in base 10.
func (k Key) String() string {
	if k.isStr {
		return k.str
	}
	return strconv.Itoa(k.num)
}

// Value returns the key as a native Go value: an int or a string.
func (k Key) Value() any {
	if k.isStr {
		return k.str
	}
	return k.num
}
