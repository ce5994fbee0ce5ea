package collections

import (
	"fmt"

	"github.com/romkatsu/collection/arr"
)

// This file contains package-level generic functions. Go methods cannot
// introduce type parameters, so typed constructors and typed folds live
// here:
//
//	c := collections.Of([]string{"a", "b"})
//	n := collections.Reduce(c, func(acc int, v any, _ arr.Key) int {
//	    return acc + len(v.(string))
//	}, 0)

// Of creates a Collection from a typed slice under the keys 0..n-1.
func Of[T any](items []T) *Collection {
	m := arr.NewMap(len(items))
	for _, item := range items {
		m.Append(item)
	}
	return Wrap(m)
}

// OfMap creates a Collection from a Go map. Go maps are unordered, so
// entries are ordered by key: integer keys ascending, then string keys.
// Keys that are not valid array keys yield [ErrTypeMismatch].
func OfMap[K comparable, V any](m map[K]V) (*Collection, error) {
	return From(m)
}

// Reduce folds the collection into a value of type U.
//
//	total := collections.Reduce(c, func(acc float64, v any, _ arr.Key) float64 {
//	    return acc + v.(Order).Amount
//	}, 0)
func Reduce[U any](c *Collection, fn func(U, any, arr.Key) U, initial U) U {
	result := initial
	for k, v := range c.All() {
		result = fn(result, v, k)
	}
	return result
}

// Typed returns the values as a []T, or [ErrTypeMismatch] when a value is
// not a T.
func Typed[T any](c *Collection) ([]T, error) {
	out := make([]T, 0, c.Count())
	for k, v := range c.All() {
		t, ok := v.(T)
		if !ok {
			var zero T
			return nil, fmt.Errorf("%w: value at key %s is %T, not %T", ErrTypeMismatch, k, v, zero)
		}
		out = append(out, t)
	}
	return out, nil
}

// Pairs returns the entries of c as key/value pairs in order.
func Pairs(c *Collection) []Pair {
	out := make([]Pair, 0, c.Count())
	for k, v := range c.All() {
		out = append(out, Pair{Key: k, Value: v})
	}
	return out
}

// Combine creates a Collection using the values of keys as keys and the
// values of values as values, pairing them by position. Returns
// [ErrMismatchedLengths] when the counts differ.
//
//	c, _ := collections.Combine(c.Keys(), c.Values()) // same pairs as c
func Combine(keys, values *Collection) (*Collection, error) {
	m, err := arr.Combine(keys.data, values.data)
	if err != nil {
		return nil, err
	}
	return Wrap(m), nil
}
