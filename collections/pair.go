package collections

import (
	"fmt"

	"github.com/romkatsu/collection/arr"
)

// Pair is one entry of a collection, produced by [Pairs].
type Pair struct {
	Key   arr.Key
	Value any
}

// String returns a human-readable representation: "(key, value)".
func (p Pair) String() string {
	return fmt.Sprintf("(%s, %v)", p.Key, p.Value)
}
