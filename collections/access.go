package collections

import (
	"github.com/romkatsu/collection/arr"
)

// Indexable is bracket-style access to a keyed container: existence check,
// read, write and delete. Keys are normalised with [arr.KeyOf].
//
// *Collection implements Indexable. Its Set and Unset replace the
// collection's array with a new one instead of writing into the shared
// array, so collections derived earlier and arrays returned by Data are
// unaffected.
type Indexable interface {
	// Has reports whether key is present with a non-nil value.
	Has(key any) bool

	// Get returns the value under key or an error when it is absent.
	Get(key any) (any, error)

	// Set stores value under key. A nil key appends under the next free
	// integer key, failing once math.MaxInt is taken.
	Set(key, value any) error

	// Unset removes key. Removing an absent key is a no-op.
	Unset(key any)
}

var _ Indexable = (*Collection)(nil)

// Set stores value under key, or under the next free integer key when key
// is nil. An invalid key yields [ErrTypeMismatch]; appending after the key
// math.MaxInt yields [ErrIndexOverflow] and leaves c unchanged.
//
// Set is the only write besides [Collection.Unset] and is not safe for
// concurrent use.
func (c *Collection) Set(key, value any) error {
	data := c.data.Clone()
	if key == nil {
		if _, err := data.Push(value); err != nil {
			return err
		}
		c.data = data
		return nil
	}
	k, err := arr.KeyOf(key)
	if err != nil {
		return err
	}
	data.Set(k, value)
	c.data = data
	return nil
}

// Unset removes key by reassigning the collection to its filtered array.
func (c *Collection) Unset(key any) {
	k, err := arr.KeyOf(key)
	if err != nil || !c.data.Has(k) {
		return
	}
	c.data = arr.Filter(c.data, func(_ any, ek arr.Key) bool { return ek != k })
}
