package collections

import (
	"fmt"
	"slices"

	"github.com/romkatsu/collection/arr"
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) apply(c int) int {
	if d == Descending {
		return -c
	}
	return c
}

// Sort returns a new collection ordered by value under flag. Keys stay
// attached to their values. Equal values keep their relative order.
//
//	collections.Wrap(m).Sort(collections.Ascending, arr.SortRegular)
//	// {a:3, b:1, c:2} → {b:1, c:2, a:3}
func (c *Collection) Sort(dir Direction, flag arr.SortFlag) *Collection {
	cmp := arr.Comparator(flag)
	return Wrap(arr.SortFunc(c.data, func(a, b arr.Entry) int {
		return dir.apply(cmp(a.Value, b.Value))
	}))
}

// SortByKey returns a new collection ordered by key under flag.
func (c *Collection) SortByKey(dir Direction, flag arr.SortFlag) *Collection {
	cmp := arr.Comparator(flag)
	return Wrap(arr.SortFunc(c.data, func(a, b arr.Entry) int {
		return dir.apply(cmp(a.Key, b.Key))
	}))
}

// SortNatural returns a new collection ordered by value in natural order,
// so "img2" sorts before "img10". Keys are kept.
func (c *Collection) SortNatural(caseSensitive bool) *Collection {
	flag := arr.SortNatural
	if !caseSensitive {
		flag |= arr.SortFlagCase
	}
	return c.Sort(Ascending, flag)
}

// SortKey is one criterion of a multi-key sort.
type SortKey struct {
	Field     arr.Field
	Direction Direction
	Flag      arr.SortFlag
}

// SortKeys pairs fields with directions and flags by position. A single
// direction or flag applies to every field and an empty list means
// Ascending / arr.SortRegular; any other length mismatch yields
// [ErrMismatchedLengths].
func SortKeys(fields []arr.Field, directions []Direction, flags []arr.SortFlag) ([]SortKey, error) {
	dirs, err := broadcast(directions, len(fields), Ascending)
	if err != nil {
		return nil, fmt.Errorf("directions: %w", err)
	}
	fl, err := broadcast(flags, len(fields), arr.SortRegular)
	if err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	keys := make([]SortKey, len(fields))
	for i, f := range fields {
		keys[i] = SortKey{Field: f, Direction: dirs[i], Flag: fl[i]}
	}
	return keys, nil
}

func broadcast[T any](in []T, n int, def T) ([]T, error) {
	switch len(in) {
	case n:
		return in, nil
	case 0:
		in = []T{def}
	case 1:
	default:
		return nil, ErrMismatchedLengths
	}
	out := make([]T, n)
	for i := range out {
		out[i] = in[0]
	}
	return out, nil
}

// SortBy returns a new collection ordered by the value field selects. The
// result is renumbered from 0; original keys are discarded.
func (c *Collection) SortBy(field arr.Field, dir Direction, flag arr.SortFlag) *Collection {
	return c.SortByKeys(SortKey{Field: field, Direction: dir, Flag: flag})
}

// SortByKeys returns a new collection ordered by several criteria; later
// keys break ties of earlier ones. A missing field sorts as nil. The result
// is renumbered from 0; original keys are discarded.
//
//	keys, _ := collections.SortKeys(
//	    []arr.Field{arr.Path("age"), arr.Path("name")},
//	    []collections.Direction{collections.Descending, collections.Ascending},
//	    []arr.SortFlag{arr.SortNumeric})
//	users.SortByKeys(keys...)
func (c *Collection) SortByKeys(keys ...SortKey) *Collection {
	type row struct {
		value  any
		fields []any
	}
	cmps := make([]func(a, b any) int, len(keys))
	for i, k := range keys {
		cmps[i] = arr.Comparator(k.Flag)
	}
	rows := make([]row, 0, c.Count())
	for _, v := range c.All() {
		r := row{value: v, fields: make([]any, len(keys))}
		for i, k := range keys {
			r.fields[i] = k.Field.Value(v, nil)
		}
		rows = append(rows, r)
	}
	slices.SortStableFunc(rows, func(a, b row) int {
		for i, k := range keys {
			if r := k.Direction.apply(cmps[i](a.fields[i], b.fields[i])); r != 0 {
				return r
			}
		}
		return 0
	})
	out := arr.NewMap(len(rows))
	for _, r := range rows {
		out.Append(r.value)
	}
	return Wrap(out)
}
