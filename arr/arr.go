package arr

import (
	"fmt"
	"math"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the entries of m for which fn(value, key) returns true,
// keeping keys and order.
func Filter(m *Map, fn func(any, Key) bool) *Map {
	out := NewMap(m.Len())
	for k, v := range m.All() {
		if fn(v, k) {
			out.Set(k, v)
		}
	}
	return out
}

// MapValues returns a Map with every value replaced by fn(value, key),
// keeping keys and order.
func MapValues(m *Map, fn func(any, Key) any) *Map {
	out := NewMap(m.Len())
	for k, v := range m.All() {
		out.Set(k, fn(v, k))
	}
	return out
}

// Values returns the values of m under the keys 0..n-1.
func Values(m *Map) *Map {
	return List(m.Values()...)
}

// KeyList returns the keys of m as values under the keys 0..n-1. Each value
// is an int or a string.
func KeyList(m *Map) *Map {
	out := NewMap(m.Len())
	for k := range m.All() {
		out.Append(k.Value())
	}
	return out
}

// Reverse returns m with its entries in reverse order. Keys are kept.
func Reverse(m *Map) *Map {
	entries := m.Entries()
	slices.Reverse(entries)
	return FromEntries(entries)
}

// Flip returns a Map whose keys are the values of m and whose values are the
// keys of m. When two entries share a value the later one wins. A value that
// cannot be a key yields [ErrInvalidKey].
func Flip(m *Map) (*Map, error) {
	out := NewMap(m.Len())
	for k, v := range m.All() {
		nk, err := KeyOf(v)
		if err != nil {
			return nil, fmt.Errorf("flip value at key %s: %w", k, err)
		}
		out.Set(nk, k.Value())
	}
	return out, nil
}

// Combine returns a Map using the values of keys as keys and the values of
// values as values, pairing them by position.
func Combine(keys, values *Map) (*Map, error) {
	if keys.Len() != values.Len() {
		return nil, ErrMismatchedLengths
	}
	vals := values.Values()
	out := NewMap(keys.Len())
	i := 0
	for _, kv := range keys.All() {
		k, err := KeyOf(kv)
		if err != nil {
			return nil, err
		}
		out.Set(k, vals[i])
		i++
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// NoLimit as the limit of [Slice] takes every entry after the offset.
const NoLimit = math.MaxInt

// Slice returns up to limit entries of m starting at offset. A negative
// offset counts from the end. A negative limit stops that many entries
// before the end; pass [NoLimit] to take everything after offset.
//
// String keys are always kept. Integer keys are kept when preserveKeys is
// true and renumbered from 0 otherwise.
func Slice(m *Map, offset, limit int, preserveKeys bool) *Map {
	total := m.Len()
	if offset < 0 {
		offset = max(offset+total, 0)
	}
	if offset >= total {
		return NewMap(0)
	}
	end := total
	switch {
	case limit < 0:
		end = max(total+limit, offset)
	case limit < total-offset:
		end = offset + limit
	}
	out := NewMap(end - offset)
	for _, e := range m.Entries()[offset:end] {
		if e.Key.isStr || preserveKeys {
			out.Set(e.Key, e.Value)
		} else {
			out.Append(e.Value)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// SortFunc returns m with its entries ordered by cmp. The sort is stable and
// keys are kept.
func SortFunc(m *Map, cmp func(a, b Entry) int) *Map {
	entries := m.Entries()
	slices.SortStableFunc(entries, cmp)
	return FromEntries(entries)
}

// ─────────────────────────────────────────────────────────────────────────────
// Merging
// ─────────────────────────────────────────────────────────────────────────────

// Merge combines maps left to right with array-merge semantics: string keys
// are overwritten by later maps, integer keys are renumbered from 0 in order
// of appearance.
//
//	Merge(List(1, 2), List(3))       // → [1, 2, 3]
//	Merge({a:1, 5:x}, {a:2, 9:y})    // → {a:2, 0:x, 1:y}
func Merge(maps ...*Map) *Map {
	out := NewMap(0)
	for _, m := range maps {
		for k, v := range m.All() {
			if k.isStr {
				out.Set(k, v)
			} else {
				out.Append(v)
			}
		}
	}
	return out
}

// MergeRecursive merges srcs into a copy of dst, left to right:
//
//   - an integer key already present is appended under the next free index,
//     otherwise it is kept as is
//   - a string key whose old and new values are both arrays is merged
//     recursively
//   - any other string key is overwritten
//
// dst and srcs are not modified. Appending after the key math.MaxInt yields
// [ErrIndexOverflow].
func MergeRecursive(dst *Map, srcs ...*Map) (*Map, error) {
	out := dst.Clone()
	for _, src := range srcs {
		for k, v := range src.All() {
			if !k.isStr {
				if !out.Has(k) {
					out.Set(k, v)
				} else if _, err := out.Push(v); err != nil {
					return nil, fmt.Errorf("merge value at key %s: %w", k, err)
				}
				continue
			}
			if old, ok := out.Get(k); ok {
				oldArr, oldIsArr := asArray(old)
				newArr, newIsArr := asArray(v)
				if oldIsArr && newIsArr {
					merged, err := MergeRecursive(oldArr, newArr)
					if err != nil {
						return nil, fmt.Errorf("merge key %s: %w", k, err)
					}
					out.Set(k, merged)
					continue
				}
			}
			out.Set(k, v)
		}
	}
	return out, nil
}

// Collapse merges every value of m, each of which must be array-like, into a
// single Map using [Merge] semantics. A value that is not array-like yields
// [ErrTypeMismatch].
func Collapse(m *Map) (*Map, error) {
	parts := make([]*Map, 0, m.Len())
	for k, v := range m.All() {
		part, err := From(v)
		if err != nil {
			return nil, fmt.Errorf("collapse value at key %s: %w", k, err)
		}
		parts = append(parts, part)
	}
	return Merge(parts...), nil
}
