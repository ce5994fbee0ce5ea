package collections

import (
	"iter"

	"github.com/romkatsu/collection/arr"
)

// Enumerable is the read-only surface of [Collection].
//
// Accept Enumerable in your own functions so that callers can pass any
// keyed container without depending on the concrete *Collection type.
type Enumerable interface {
	// All returns an iterator over each (key, value) pair in order.
	All() iter.Seq2[arr.Key, any]

	// Count returns the number of entries.
	Count() int

	// Data returns a copy of the entries as an ordered array.
	Data() *arr.Map

	// Each calls fn(value, key) for every entry.
	Each(fn func(any, arr.Key))

	// Filter returns a new collection containing only entries for which
	// fn returns true.
	Filter(fn func(any, arr.Key) bool) *Collection

	// First returns the first value, or false when there is none.
	First() (any, bool)

	// IsEmpty reports whether there are no entries.
	IsEmpty() bool

	// Last returns the last value, or false when there is none.
	Last() (any, bool)

	// Lookup returns the value under k and whether k is present.
	Lookup(k arr.Key) (any, bool)
}

var (
	_ Enumerable    = (*Collection)(nil)
	_ arr.Arrayable = (*Collection)(nil)
	_ arr.Indexed   = (*Collection)(nil)
)
