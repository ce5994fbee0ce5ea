package arr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by arr operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := arr.Flip(m)
//	if errors.Is(err, arr.ErrTypeMismatch) {
//	    // some value cannot become a key
//	}
var (
	// ErrTypeMismatch is returned when an operand has the wrong shape for the
	// operation, e.g. collapsing a value that is not an array.
	ErrTypeMismatch = errors.New("arr: type mismatch")

	// ErrInvalidKey is returned when a value cannot be used as an array key.
	// It wraps ErrTypeMismatch.
	ErrInvalidKey = fmt.Errorf("%w: value cannot be used as an array key", ErrTypeMismatch)

	// ErrMismatchedLengths is returned by Combine when the key and value
	// arrays have different lengths.
	ErrMismatchedLengths = errors.New("arr: keys and values must have the same length")

	// ErrIndexOverflow is returned when appending to a map that already uses
	// the largest integer key.
	ErrIndexOverflow = errors.New("arr: next array index is already occupied")
)
