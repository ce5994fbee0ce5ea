// Package arr implements the ordered, PHP-style array that backs
// [github.com/romkatsu/collection/collections], together with the helper
// functions the collection is built on.
//
// # Keys and maps
//
// A [Map] is an insertion-ordered mapping from [Key] to any value. Keys are
// either integers or strings and are normalised the way PHP normalises array
// keys, so "20" and 20 address the same entry:
//
//	m := arr.NewMap(0)
//	m.Set(arr.StringKey("name"), "Alice")
//	m.Append("first")                 // key 0
//	m.Set(arr.StringKey("20"), "x")   // stored under int key 20
//	m.Append("next")                  // key 21
//
// # Array functions
//
// The package-level functions mirror the array functions a collection needs:
// [Filter], [MapValues], [Reverse], [Slice], [Values], [KeyList], [Flip],
// [Combine], [Merge] (array-merge semantics), [MergeRecursive] and [Collapse].
// None of them modify their input.
//
// # Field paths
//
// A [Field] addresses a value inside an item. It is the item itself
// ([Self]), a dotted path ([Path]), explicit path segments ([Segments]) or an
// extractor function ([Func]):
//
//	arr.Get(item, "user.address.city")          // → "London"
//	arr.Path("score").Value(item, 0)            // → 42, or 0 when missing
//
// Paths walk [Map] values, collections, map[string]any, and Go maps, slices
// and structs through reflection.
//
// # Comparison
//
// [Compare] and [Comparator] order values under a [SortFlag] (regular,
// numeric, string, locale, natural, optionally case-insensitive). [Equal]
// matches values under [Loose] or [Strict] equality:
//
//   - Strict: same dynamic type and deeply equal. int(1) and int64(1) differ.
//   - Loose: numbers and numeric strings compare numerically ("1e1" == 10);
//     a number and a non-numeric string compare as strings; nil and bool
//     operands compare by truthiness, except nil against a string which
//     compares as ""; arrays are equal when they hold loosely equal values
//     under the same keys, in any order.
//
// # Encoding
//
// [Map] implements json.Marshaler/Unmarshaler and yaml.Marshaler/Unmarshaler.
// Lists (keys 0..n-1 in order) encode as arrays, anything else as objects, and
// decoding keeps document order.
package arr
