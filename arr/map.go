package arr

import (
	"iter"
	"math"
	"slices"
)

// Entry is a single key/value pair of a [Map].
type Entry struct {
	Key   Key
	Value any
}

// Map is an insertion-ordered mapping from [Key] to any value with unique
// keys, modelled on PHP arrays.
//
// The zero value is an empty map ready to use. A nil *Map reads as an empty
// map.
//
// Map is not safe for concurrent writes. Maps held by a collection are never
// written after construction.
type Map struct {
	keys   []Key
	values map[Key]any
	next   int
	full   bool // the key math.MaxInt is taken, so nothing can be appended
}

// NewMap returns an empty Map with room for capacity entries.
func NewMap(capacity int) *Map {
	if capacity < 0 {
		capacity = 0
	}
	return &Map{
		keys:   make([]Key, 0, capacity),
		values: make(map[Key]any, capacity),
	}
}

// List returns a Map holding values under the keys 0..len(values)-1.
func List(values ...any) *Map {
	m := NewMap(len(values))
	for _, v := range values {
		m.Append(v)
	}
	return m
}

// FromEntries builds a Map from entries in order. A repeated key keeps its
// first position and takes the last value.
func FromEntries(entries []Entry) *Map {
	m := NewMap(len(entries))
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored under k and whether k is present.
func (m *Map) Get(k Key) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[k]
	return v, ok
}

// Has reports whether k is present, even when its value is nil.
func (m *Map) Has(k Key) bool {
	_, ok := m.Get(k)
	return ok
}

// Set stores v under k. A new key is appended to the end of the order; an
// existing key keeps its position.
func (m *Map) Set(k Key, v any) {
	if m.values == nil {
		m.values = make(map[Key]any)
	}
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
		if !k.isStr && !m.full && k.num >= m.next {
			if k.num == math.MaxInt {
				m.full = true
			} else {
				m.next = k.num + 1
			}
		}
	}
	m.values[k] = v
}

// Push stores v under the next free integer key and returns that key. Once
// the key math.MaxInt has been used there is no next key and Push returns
// [ErrIndexOverflow].
func (m *Map) Push(v any) (Key, error) {
	if m.full {
		return Key{}, ErrIndexOverflow
	}
	k := IntKey(m.next)
	m.Set(k, v)
	return k, nil
}

// Append is [Map.Push] for maps whose integer keys stay below math.MaxInt,
// such as maps built by appending from 0. It panics with
// [ErrIndexOverflow] otherwise.
func (m *Map) Append(v any) Key {
	k, err := m.Push(v)
	if err != nil {
		panic(err)
	}
	return k
}

// Delete removes k. The next free integer key is not lowered.
func (m *Map) Delete(k Key) {
	if m == nil {
		return
	}
	if _, ok := m.values[k]; !ok {
		return
	}
	delete(m.values, k)
	if i := slices.Index(m.keys, k); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
}

// NextIndex returns the integer key the next Push would use, or false when
// no key is left.
func (m *Map) NextIndex() (int, bool) {
	if m == nil {
		return 0, true
	}
	return m.next, !m.full
}

// Keys returns a copy of the keys in order.
func (m *Map) Keys() []Key {
	if m == nil {
		return []Key{}
	}
	return slices.Clone(m.keys)
}

// Values returns the values in order.
func (m *Map) Values() []any {
	out := make([]any, 0, m.Len())
	for _, v := range m.All() {
		out = append(out, v)
	}
	return out
}

// Entries returns the key/value pairs in order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, m.Len())
	for k, v := range m.All() {
		out = append(out, Entry{Key: k, Value: v})
	}
	return out
}

// All returns an iterator over each (key, value) pair in order.
func (m *Map) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of m.
func (m *Map) Clone() *Map {
	if m == nil {
		return NewMap(0)
	}
	out := &Map{
		keys:   slices.Clone(m.keys),
		values: make(map[Key]any, len(m.values)),
		next:   m.next,
		full:   m.full,
	}
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// IsList reports whether the keys are exactly 0..Len()-1 in order.
// An empty map is a list.
func (m *Map) IsList() bool {
	if m == nil {
		return true
	}
	for i, k := range m.keys {
		if k.isStr || k.num != i {
			return false
		}
	}
	return true
}
