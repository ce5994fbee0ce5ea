package arr

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/facette/natsort"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortFlag selects how values are compared when sorting. The numeric values
// match PHP's SORT_* constants.
type SortFlag int

const (
	// SortRegular compares values with the same rules as [Loose] equality.
	SortRegular SortFlag = 0
	// SortNumeric compares values as numbers (see [ToNumber]).
	SortNumeric SortFlag = 1
	// SortString compares the string forms of values byte by byte.
	SortString SortFlag = 2
	// SortLocaleString compares string forms with the collation set by
	// [SetCollation].
	SortLocaleString SortFlag = 5
	// SortNatural compares string forms in natural order, treating runs of
	// digits as numbers ("img2" < "img10").
	SortNatural SortFlag = 6
	// SortFlagCase can be combined with SortString or SortNatural to compare
	// case-insensitively.
	SortFlagCase SortFlag = 8
)

// Equality selects how [Equal] matches two values.
type Equality int

const (
	// Loose equality coerces numbers, numeric strings, bools and nil.
	Loose Equality = iota
	// Strict equality requires the same dynamic type and equal values.
	Strict
)

// collation holds the locale used by SortLocaleString.
var collation struct {
	mu  sync.RWMutex
	tag language.Tag
}

// SetCollation sets the locale used by [SortLocaleString]. The default is
// the root collation ([language.Und]). Safe to call from multiple goroutines.
func SetCollation(tag language.Tag) {
	collation.mu.Lock()
	defer collation.mu.Unlock()
	collation.tag = tag
}

// Collation returns the locale used by [SortLocaleString].
func Collation() language.Tag {
	collation.mu.RLock()
	defer collation.mu.RUnlock()
	return collation.tag
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, with or
// after b under flag.
func Compare(a, b any, flag SortFlag) int {
	return Comparator(flag)(a, b)
}

// Comparator returns a comparison function for flag. The returned function
// must not be shared between goroutines when flag is SortLocaleString.
func Comparator(flag SortFlag) func(a, b any) int {
	fold := flag&SortFlagCase != 0
	switch flag &^ SortFlagCase {
	case SortNumeric:
		return func(a, b any) int { return cmp.Compare(ToNumber(a), ToNumber(b)) }
	case SortString:
		return func(a, b any) int { return strings.Compare(sortString(a, fold), sortString(b, fold)) }
	case SortLocaleString:
		c := collate.New(Collation())
		return func(a, b any) int { return c.CompareString(ToString(a), ToString(b)) }
	case SortNatural:
		return func(a, b any) int { return compareNatural(sortString(a, fold), sortString(b, fold)) }
	}
	return compareRegular
}

func sortString(v any, fold bool) string {
	s := ToString(v)
	if fold {
		return cases.Fold().String(s)
	}
	return s
}

// compareNatural turns natsort's less-or-equal answer into a total order.
func compareNatural(a, b string) int {
	if a == b {
		return 0
	}
	lt, gt := natsort.Compare(a, b), natsort.Compare(b, a)
	switch {
	case lt && !gt:
		return -1
	case gt && !lt:
		return 1
	}
	return strings.Compare(a, b)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

func isBoolish(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(bool)
	return ok
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, bool, string, Key:
		return true
	}
	_, ok := number(v)
	return ok
}

// compareRegular orders two values of any type:
//
//   - arrays compare by length, then value by value under a's keys; an array
//     sorts after any non-array
//   - bools (and nil against a non-string) compare by truthiness
//   - numbers and numeric strings compare numerically
//   - other scalars compare as strings
func compareRegular(a, b any) int {
	if ka, ok := a.(Key); ok {
		a = ka.Value()
	}
	if kb, ok := b.(Key); ok {
		b = kb.Value()
	}

	am, aArr := asArray(a)
	bm, bArr := asArray(b)
	switch {
	case aArr && bArr:
		return compareArrays(am, bm)
	case aArr || bArr:
		if isBoolish(a) || isBoolish(b) {
			return compareBool(ToBool(a), ToBool(b))
		}
		if aArr {
			return 1
		}
		return -1
	}

	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		if s, ok := b.(string); ok {
			return strings.Compare("", s)
		}
		return compareBool(false, ToBool(b))
	case b == nil:
		if s, ok := a.(string); ok {
			return strings.Compare(s, "")
		}
		return compareBool(ToBool(a), false)
	case isBoolish(a) || isBoolish(b):
		return compareBool(ToBool(a), ToBool(b))
	}

	if ai, ok := integer(a); ok {
		if bi, ok := integer(b); ok {
			return cmp.Compare(ai, bi)
		}
	}
	if af, ok := number(a); ok {
		if bf, ok := number(b); ok {
			return cmp.Compare(af, bf)
		}
	}
	if isScalar(a) && isScalar(b) {
		return strings.Compare(ToString(a), ToString(b))
	}
	if reflect.DeepEqual(a, b) {
		return 0
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// compareArrays compares by length, then by the values under a's keys. A key
// of a missing from b makes a sort after b.
func compareArrays(a, b *Map) int {
	if c := cmp.Compare(a.Len(), b.Len()); c != 0 {
		return c
	}
	for k, av := range a.All() {
		bv, ok := b.Get(k)
		if !ok {
			return 1
		}
		if c := compareRegular(av, bv); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether a and b match under mode.
func Equal(a, b any, mode Equality) bool {
	if mode == Strict {
		return StrictEqual(a, b)
	}
	return LooseEqual(a, b)
}

// LooseEqual reports whether a and b are equal after coercion. See the
// package documentation for the rules.
func LooseEqual(a, b any) bool {
	am, aArr := asArray(a)
	bm, bArr := asArray(b)
	switch {
	case aArr && bArr:
		if am.Len() != bm.Len() {
			return false
		}
		for k, av := range am.All() {
			bv, ok := bm.Get(k)
			if !ok || !LooseEqual(av, bv) {
				return false
			}
		}
		return true
	case aArr || bArr:
		if isBoolish(a) || isBoolish(b) {
			return ToBool(a) == ToBool(b)
		}
		return false
	case isScalar(a) && isScalar(b):
		return compareRegular(a, b) == 0
	}
	return reflect.DeepEqual(a, b)
}

// StrictEqual reports whether a and b have the same dynamic type and equal
// values. Arrays must hold strictly equal values under the same keys in the
// same order.
func StrictEqual(a, b any) bool {
	if am, ok := a.(*Map); ok {
		bm, ok := b.(*Map)
		return ok && identicalMaps(am, bm)
	}
	if aa, ok := a.(Arrayable); ok {
		ba, ok := b.(Arrayable)
		if !ok || reflect.TypeOf(a) != reflect.TypeOf(b) {
			return false
		}
		return identicalMaps(aa.Data(), ba.Data())
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func identicalMaps(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	bk := b.Keys()
	i := 0
	for k, av := range a.All() {
		if bk[i] != k {
			return false
		}
		bv, _ := b.Get(k)
		if !StrictEqual(av, bv) {
			return false
		}
		i++
	}
	return true
}
