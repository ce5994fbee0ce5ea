// Package collections provides Collection, an immutable, chainable wrapper
// around an ordered key/value array ([arr.Map]).
//
// # Overview
//
// Keys are integers or strings, values are anything, and insertion order is
// kept. Every transformation returns a new Collection:
//
//	total := collections.New(1, 2, 3).
//	    Map(func(v any, _ arr.Key) any { return v.(int) + 1 }).
//	    Filter(func(v any, _ arr.Key) bool { return v.(int) < 4 }).
//	    Sum(arr.Self()) // → 5
//
// Keys survive transformations unless the operation says otherwise:
// [Collection.Values], [Collection.SortBy] and non-key-preserving
// [Collection.GroupBy] and [Collection.Slice] renumber them.
//
// # Immutability
//
// Transformations never modify the receiver. The only mutations are the
// indexed writes of [Indexable] ([Collection.Set], [Collection.Unset]), which
// swap in a freshly built array, so values returned earlier never observe
// them. Readers may share a Collection across goroutines; writes assume a
// single writer.
//
// # Field paths
//
// Aggregation, grouping, remapping and multi-key sorting take an [arr.Field]:
//
//	users.Sum(arr.Path("stats.visits"))
//	users.GroupBy(arr.Path("age"), true)
//	users.Remap(arr.Path("id"), arr.Path("name"))
//	users.SortBy(arr.Func(func(u any) any { return len(u.(User).Name) }),
//	    collections.Descending, arr.SortNumeric)
//
// # Equality
//
// [Collection.Contains], [Collection.Remove] and [Collection.Replace] take an
// [arr.Equality]: [arr.Loose] coerces numbers, numeric strings, bools and
// nil, [arr.Strict] requires identical types. Contains and Remove also accept
// a [Matcher].
//
// # Macros
//
// Named transforms live in a registry: [RegisterMacro] adds one,
// [Collection.Apply] runs one, and [Collection.Pipe] chains several. The
// argument-driven operations (slice, sort, merge, index, group and friends)
// are registered out of the box, so a [Stage] list decoded from YAML or JSON
// is enough to describe a pipeline:
//
//	collections.RegisterMacro("evens", func(c *collections.Collection, _ ...any) (*collections.Collection, error) {
//	    return c.Filter(func(v any, _ arr.Key) bool { return v.(int)%2 == 0 }), nil
//	})
//
//	out, err := c.Pipe(
//	    collections.Stage{Macro: "evens"},
//	    collections.Stage{Macro: "slice", Args: []any{0, 10}},
//	)
package collections
