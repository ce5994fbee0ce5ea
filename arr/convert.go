package arr

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Arrayable is implemented by types that can present their contents as a
// [Map], such as collections.
type Arrayable interface {
	Data() *Map
}

// Indexed is implemented by containers that can look up a single key
// without materialising a [Map]. Field paths prefer it over [Arrayable].
type Indexed interface {
	Lookup(k Key) (any, bool)
}

// From converts v into a Map.
//
// Accepted shapes are *Map (returned as is), [Arrayable] values, slices and
// arrays of any element type (indexed from 0), and Go maps whose keys are
// valid array keys. Go maps have no order, so their entries are sorted by key:
// integer keys first in ascending order, then string keys in byte order.
// Any other value yields [ErrTypeMismatch].
func From(v any) (*Map, error) {
	if m, ok := asArray(v); ok {
		return m, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		return fromGoMap(rv)
	}
	return nil, fmt.Errorf("%w: %T is not an array", ErrTypeMismatch, v)
}

// asArray converts the array-like shapes accepted by [From] except Go maps
// with invalid keys, which report false.
func asArray(v any) (*Map, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case *Map:
		if x == nil {
			return nil, false
		}
		return x, true
	case Arrayable:
		return x.Data(), true
	case []any:
		return List(x...), true
	case map[string]any:
		m, err := fromGoMap(reflect.ValueOf(x))
		return m, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		m := NewMap(rv.Len())
		for i := 0; i < rv.Len(); i++ {
			m.Append(rv.Index(i).Interface())
		}
		return m, true
	case reflect.Map:
		m, err := fromGoMap(rv)
		return m, err == nil
	}
	return nil, false
}

func fromGoMap(rv reflect.Value) (*Map, error) {
	entries := make([]Entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := KeyOf(iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: k, Value: iter.Value().Interface()})
	}
	slices.SortFunc(entries, func(a, b Entry) int { return compareKeys(a.Key, b.Key) })
	return FromEntries(entries), nil
}

// compareKeys orders integer keys before string keys.
func compareKeys(a, b Key) int {
	switch {
	case a.isStr != b.isStr:
		if a.isStr {
			return 1
		}
		return -1
	case a.isStr:
		return cmp.Compare(a.str, b.str)
	}
	return cmp.Compare(a.num, b.num)
}
