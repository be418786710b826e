// This file declares the sentinel errors shared by the seq containers.

package seq

import "errors"

// Sentinel errors for container and cursor access.
var (
	// ErrIndexRange indicates a positional access outside [0, Len).
	ErrIndexRange = errors.New("seq: index out of range")

	// ErrPastEnd indicates a value read from a cursor positioned past the
	// last element.
	ErrPastEnd = errors.New("seq: cursor past end of sequence")
)
