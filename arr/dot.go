package arr

import (
	"reflect"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Field paths
//
// A Field addresses a value inside an item:
//
//	item := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Self().Value(item, nil)                         → item
//	Path("user.address.city").Value(item, nil)      → "London"
//	Segments("user", "name").Value(item, nil)       → "Alice"
//	Func(fn).Value(item, nil)                       → fn(item)
// ─────────────────────────────────────────────────────────────────────────────

type fieldKind uint8

const (
	selfField fieldKind = iota
	pathField
	segmentsField
	funcField
)

// Field selects a value from an item. The zero Field is [Self].
type Field struct {
	kind     fieldKind
	path     string
	segments []string
	fn       func(any) any
}

// Self returns the Field that selects the whole item.
func Self() Field { return Field{} }

// Path returns a Field for a dot-separated path. A key that literally
// contains dots is matched before the path is split.
func Path(path string) Field { return Field{kind: pathField, path: path} }

// Segments returns a Field that walks the given keys one by one without
// splitting them on dots.
func Segments(keys ...string) Field {
	return Field{kind: segmentsField, segments: append([]string(nil), keys...)}
}

// Func returns a Field that computes the value with fn.
func Func(fn func(item any) any) Field { return Field{kind: funcField, fn: fn} }

// IsSelf reports whether f selects the whole item.
func (f Field) IsSelf() bool { return f.kind == selfField }

// String describes the field for error messages.
func (f Field) String() string {
	switch f.kind {
	case pathField:
		return f.path
	case segmentsField:
		return strings.Join(f.segments, " > ")
	case funcField:
		return "func"
	}
	return "self"
}

// Lookup returns the value f selects from item and whether it was found.
// Self and Func fields always report found.
func (f Field) Lookup(item any) (any, bool) {
	switch f.kind {
	case pathField:
		return lookupPath(item, f.path)
	case segmentsField:
		cur := item
		for _, seg := range f.segments {
			v, ok := lookup(cur, seg)
			if !ok {
				return nil, false
			}
			cur = v
		}
		return cur, true
	case funcField:
		return f.fn(item), true
	}
	return item, true
}

// Value returns the value f selects from item, or def when it is missing.
func (f Field) Value(item, def any) any {
	if v, ok := f.Lookup(item); ok {
		return v
	}
	return def
}

// Get retrieves a value from item using a dot-notation path.
// Returns def[0] (or nil) when the path does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(item any, path string, def ...any) any {
	if v, ok := lookupPath(item, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation path exists in item.
func Has(item any, path string) bool {
	_, ok := lookupPath(item, path)
	return ok
}

func lookupPath(item any, path string) (any, bool) {
	if v, ok := lookup(item, path); ok {
		return v, true
	}
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return nil, false
	}
	parent, ok := lookupPath(item, path[:i])
	if !ok {
		return nil, false
	}
	return lookup(parent, path[i+1:])
}

// lookup resolves a single key in container.
func lookup(container any, key string) (any, bool) {
	switch c := container.(type) {
	case nil:
		return nil, false
	case *Map:
		return c.Get(StringKey(key))
	case Indexed:
		return c.Lookup(StringKey(key))
	case Arrayable:
		return c.Data().Get(StringKey(key))
	case map[string]any:
		v, ok := c[key]
		return v, ok
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	}
	return lookupReflect(reflect.ValueOf(container), key)
}

func lookupReflect(rv reflect.Value, key string) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return structField(rv, key)
	case reflect.Map:
		kt := rv.Type().Key()
		var kv reflect.Value
		switch kt.Kind() {
		case reflect.String:
			kv = reflect.ValueOf(key).Convert(kt)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(key, 10, 64)
			if err != nil || reflect.Zero(kt).OverflowInt(n) {
				return nil, false
			}
			kv = reflect.New(kt).Elem()
			kv.SetInt(n)
		default:
			return nil, false
		}
		v := rv.MapIndex(kv)
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

// structField matches an exported field by exact name, then by its json tag
// name, then by case-insensitive name.
func structField(rv reflect.Value, key string) (any, bool) {
	t := rv.Type()
	if sf, ok := t.FieldByName(key); ok && sf.IsExported() {
		fv, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name == key {
			return rv.Field(i).Interface(), true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.IsExported() && strings.EqualFold(sf.Name, key) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}
