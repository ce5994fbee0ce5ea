package collections

import (
	"errors"

	"github.com/romkatsu/collection/arr"
)

// Sentinel errors returned by Collection operations.
var (
	// ErrKeyNotFound is returned by Get when the key is absent.
	ErrKeyNotFound = errors.New("collections: key not found")

	// ErrTypeMismatch is returned when operands have the wrong shape, e.g.
	// collapsing a value that is not an array or flipping a value that cannot
	// be a key. It is the same value as [arr.ErrTypeMismatch].
	ErrTypeMismatch = arr.ErrTypeMismatch

	// ErrMismatchedLengths is returned by Combine and SortKeys when parallel
	// inputs have different lengths.
	ErrMismatchedLengths = arr.ErrMismatchedLengths

	// ErrIndexOverflow is returned when a value is appended after the integer
	// key math.MaxInt. It is the same value as [arr.ErrIndexOverflow].
	ErrIndexOverflow = arr.ErrIndexOverflow

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
