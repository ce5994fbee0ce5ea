package collections

import (
	"fmt"
	"iter"
	"math"

	"github.com/romkatsu/collection/arr"
)

// Collection is an immutable wrapper around an ordered key/value array.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)                 // keys 0, 1, 2
//	c := collections.Wrap(m)                      // takes ownership of m
//	c, err := collections.From(map[string]int{"a": 1})
//	c := collections.Empty()
//
// # Callbacks
//
// Callbacks receive (value, key). Keys are [arr.Key] values; use
// [arr.Key.Value] to get the plain int or string.
type Collection struct {
	data *arr.Map
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Wrap returns a Collection over data. The collection takes ownership: the
// caller must not modify data afterwards. A nil data is an empty collection.
func Wrap(data *arr.Map) *Collection {
	if data == nil {
		data = arr.NewMap(0)
	}
	return &Collection{data: data}
}

// New creates a Collection holding items under the keys 0..len(items)-1.
func New(items ...any) *Collection {
	return &Collection{data: arr.List(items...)}
}

// Empty creates an empty Collection.
func Empty() *Collection {
	return &Collection{data: arr.NewMap(0)}
}

// From creates a Collection from a copy of v, which may be a *arr.Map,
// another Collection, a slice or array, or a Go map. Go map entries are
// ordered by key (see [arr.From]). Other values yield [ErrTypeMismatch].
func From(v any) (*Collection, error) {
	m, err := arr.From(v)
	if err != nil {
		return nil, err
	}
	if _, ok := v.(*arr.Map); ok {
		m = m.Clone()
	}
	return &Collection{data: m}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Data returns a copy of the underlying array.
func (c *Collection) Data() *arr.Map {
	if c == nil {
		return arr.NewMap(0)
	}
	return c.data.Clone()
}

// Lookup returns the value under k and whether k is present. It lets field
// paths walk into nested collections without copying them.
func (c *Collection) Lookup(k arr.Key) (any, bool) {
	if c == nil {
		return nil, false
	}
	return c.data.Get(k)
}

// All returns an iterator over each (key, value) pair in order.
//
//	for k, v := range c.All() { ... }
func (c *Collection) All() iter.Seq2[arr.Key, any] {
	if c == nil {
		return (*arr.Map)(nil).All()
	}
	return c.data.All()
}

// Count returns the number of entries.
func (c *Collection) Count() int {
	if c == nil {
		return 0
	}
	return c.data.Len()
}

// IsEmpty reports whether the collection has no entries.
func (c *Collection) IsEmpty() bool { return c.Count() == 0 }

// IsNotEmpty reports whether the collection has at least one entry.
func (c *Collection) IsNotEmpty() bool { return c.Count() > 0 }

// Has reports whether key is present with a non-nil value. key is
// normalised with [arr.KeyOf]; an invalid key is never present.
func (c *Collection) Has(key any) bool {
	k, err := arr.KeyOf(key)
	if err != nil {
		return false
	}
	v, ok := c.Lookup(k)
	return ok && v != nil
}

// Get returns the value under key, or [ErrKeyNotFound] when it is absent.
// A key present with a nil value returns (nil, nil).
func (c *Collection) Get(key any) (any, error) {
	k, err := arr.KeyOf(key)
	if err != nil {
		return nil, err
	}
	v, ok := c.Lookup(k)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, k)
	}
	return v, nil
}

// First returns the first value, or false when the collection is empty.
func (c *Collection) First() (any, bool) {
	for _, v := range c.All() {
		return v, true
	}
	return nil, false
}

// Last returns the last value, or false when the collection is empty.
func (c *Collection) Last() (any, bool) {
	var (
		last  any
		found bool
	)
	for _, v := range c.All() {
		last, found = v, true
	}
	return last, found
}

// ToJSON serialises the collection. Lists become JSON arrays, anything else
// a JSON object in key order.
func (c *Collection) ToJSON() ([]byte, error) {
	return c.MarshalJSON()
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.Data().Entries())
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every entry in order.
func (c *Collection) Each(fn func(any, arr.Key)) {
	for k, v := range c.All() {
		fn(v, k)
	}
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged for further chaining.
func (c *Collection) Tap(fn func(*Collection)) *Collection {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new collection with every value replaced by fn(value, key).
// Keys and order are kept.
func (c *Collection) Map(fn func(any, arr.Key) any) *Collection {
	return Wrap(arr.MapValues(c.data, fn))
}

// FlatMap maps every value with fn, which must return an array-like value,
// and collapses the results one level. See [Collection.Collapse].
func (c *Collection) FlatMap(fn func(any, arr.Key) any) (*Collection, error) {
	return c.Map(fn).Collapse()
}

// Collapse merges every value, each of which must be array-like, into a
// single collection: string keys are overwritten by later values, integer
// keys are renumbered in order. A value that is not array-like yields
// [ErrTypeMismatch].
//
//	collections.New([]int{1, 2}, []int{3, 4}).Collapse() // → [1, 2, 3, 4]
func (c *Collection) Collapse() (*Collection, error) {
	m, err := arr.Collapse(c.data)
	if err != nil {
		return nil, err
	}
	return Wrap(m), nil
}

// Filter returns a new collection with only the entries for which
// fn(value, key) returns true. Keys and relative order are kept.
func (c *Collection) Filter(fn func(any, arr.Key) bool) *Collection {
	return Wrap(arr.Filter(c.data, fn))
}

// Reject returns a new collection without the entries for which fn returns
// true. It is the complement of [Collection.Filter].
func (c *Collection) Reject(fn func(any, arr.Key) bool) *Collection {
	return c.Filter(func(v any, k arr.Key) bool { return !fn(v, k) })
}

// Reduce folds the values from left to right. initial is the first carry;
// pass nil for "no initial value", in which case fn receives a nil carry
// together with the first value. An empty collection returns initial.
//
// For a typed fold use the package-level [Reduce].
func (c *Collection) Reduce(fn func(carry, value any) any, initial any) any {
	carry := initial
	for _, v := range c.All() {
		carry = fn(carry, v)
	}
	return carry
}

// Sum adds up the numbers selected by field from every value. Missing
// paths and non-numeric values count as 0. An empty collection sums to 0.
func (c *Collection) Sum(field arr.Field) float64 {
	return c.Reduce(func(carry, v any) any {
		return carry.(float64) + arr.ToNumber(field.Value(v, 0))
	}, float64(0)).(float64)
}

// Max returns the largest number selected by field, or 0 for an empty
// collection. Values are coerced with [arr.ToNumber].
func (c *Collection) Max(field arr.Field) float64 {
	return c.extreme(field, math.Max)
}

// Min returns the smallest number selected by field, or 0 for an empty
// collection. Values are coerced with [arr.ToNumber].
func (c *Collection) Min(field arr.Field) float64 {
	return c.extreme(field, math.Min)
}

func (c *Collection) extreme(field arr.Field, pick func(a, b float64) float64) float64 {
	result := c.Reduce(func(carry, v any) any {
		n := arr.ToNumber(field.Value(v, 0))
		if carry == nil {
			return n
		}
		return pick(carry.(float64), n)
	}, nil)
	if result == nil {
		return 0
	}
	return result.(float64)
}

// Reverse returns a new collection with the entries in reverse order. Keys
// are kept.
func (c *Collection) Reverse() *Collection {
	return Wrap(arr.Reverse(c.data))
}

// Values returns a new collection of the values under the keys 0..n-1.
func (c *Collection) Values() *Collection {
	return Wrap(arr.Values(c.data))
}

// Keys returns a new collection whose values are the keys (int or string)
// under the keys 0..n-1.
func (c *Collection) Keys() *Collection {
	return Wrap(arr.KeyList(c.data))
}

// Flip returns a new collection with keys and values swapped. When values
// repeat, the later entry wins. A value that cannot be a key yields
// [ErrTypeMismatch].
func (c *Collection) Flip() (*Collection, error) {
	m, err := arr.Flip(c.data)
	if err != nil {
		return nil, err
	}
	return Wrap(m), nil
}

// Merge returns the recursive merge of c and other. other may be a
// Collection, a *arr.Map, a slice or a Go map; anything else yields
// [ErrTypeMismatch].
//
//   - string keys are overwritten by other, unless both sides hold arrays,
//     which are merged recursively
//   - integer keys already present are appended under the next free index,
//     or yield [ErrIndexOverflow] when math.MaxInt is taken
func (c *Collection) Merge(other any) (*Collection, error) {
	m, err := arr.From(other)
	if err != nil {
		return nil, err
	}
	merged, err := arr.MergeRecursive(c.data, m)
	if err != nil {
		return nil, err
	}
	return Wrap(merged), nil
}

// Remap builds a new collection where, for every value, the value selected
// by from becomes the key and the value selected by to becomes the value.
// Later duplicates overwrite earlier ones.
//
//	users.Remap(arr.Path("id"), arr.Path("name")) // → {1: "Alice", 2: "Bob"}
func (c *Collection) Remap(from, to arr.Field) (*Collection, error) {
	out := arr.NewMap(c.Count())
	for k, v := range c.All() {
		nk, err := arr.KeyOf(from.Value(v, nil))
		if err != nil {
			return nil, fmt.Errorf("collections: remap entry %s by %s: %w", k, from, err)
		}
		out.Set(nk, to.Value(v, nil))
	}
	return Wrap(out), nil
}

// IndexBy returns a new collection of the values keyed by the value field
// selects. Later duplicates overwrite earlier ones.
func (c *Collection) IndexBy(field arr.Field) (*Collection, error) {
	return c.Remap(field, arr.Self())
}

// GroupBy partitions the values by the value field selects. The result maps
// each group value to a sub-collection, groups in order of first
// appearance. Sub-collections keep the original keys when preserveKeys is
// true and are numbered from 0 otherwise.
func (c *Collection) GroupBy(field arr.Field, preserveKeys bool) (*Collection, error) {
	groups := arr.NewMap(0)
	for k, v := range c.All() {
		gk, err := arr.KeyOf(field.Value(v, nil))
		if err != nil {
			return nil, fmt.Errorf("collections: group entry %s by %s: %w", k, field, err)
		}
		g, ok := groups.Get(gk)
		if !ok {
			g = arr.NewMap(0)
			groups.Set(gk, g)
		}
		if preserveKeys {
			g.(*arr.Map).Set(k, v)
		} else {
			g.(*arr.Map).Append(v)
		}
	}
	return Wrap(arr.MapValues(groups, func(g any, _ arr.Key) any {
		return Wrap(g.(*arr.Map))
	})), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Removal
// ─────────────────────────────────────────────────────────────────────────────

// Matcher reports whether a value matches. [Collection.Contains] and
// [Collection.Remove] accept a Matcher (or a plain func(any) bool) in place
// of an item.
type Matcher func(value any) bool

func matcherFor(item any, mode arr.Equality) Matcher {
	switch fn := item.(type) {
	case Matcher:
		return fn
	case func(any) bool:
		return fn
	}
	return func(v any) bool { return arr.Equal(v, item, mode) }
}

// Contains reports whether any value matches item under mode. When item is
// a [Matcher] it is called for every value and mode is ignored.
func (c *Collection) Contains(item any, mode arr.Equality) bool {
	match := matcherFor(item, mode)
	for _, v := range c.All() {
		if match(v) {
			return true
		}
	}
	return false
}

// Remove returns a new collection without the values matching item, using
// the same rules as [Collection.Contains]. Keys are kept.
func (c *Collection) Remove(item any, mode arr.Equality) *Collection {
	match := matcherFor(item, mode)
	return c.Reject(func(v any, _ arr.Key) bool { return match(v) })
}

// Replace returns a new collection where every value equal to item under
// mode is replaced by replacement. item is always compared as a value.
func (c *Collection) Replace(item, replacement any, mode arr.Equality) *Collection {
	return c.Map(func(v any, _ arr.Key) any {
		if arr.Equal(v, item, mode) {
			return replacement
		}
		return v
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns at most limit entries starting at offset. A negative offset
// counts from the end and a negative limit stops that many entries before
// the end; [arr.NoLimit] takes the rest. String keys are always kept;
// integer keys are kept when preserveKeys is true and renumbered from 0
// otherwise.
func (c *Collection) Slice(offset, limit int, preserveKeys bool) *Collection {
	return Wrap(arr.Slice(c.data, offset, limit, preserveKeys))
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection) When(condition bool, fn func(*Collection) *Collection) *Collection {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection) Unless(condition bool, fn func(*Collection) *Collection) *Collection {
	return c.When(!condition, fn)
}
