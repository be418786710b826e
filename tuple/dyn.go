package tuple

import (
	"errors"
	"fmt"
)

// Sentinel errors for runtime-arity tuples.
var (
	// ErrEmptyTuple indicates NewDyn was called with zero values.
	ErrEmptyTuple = errors.New("tuple: at least one value required")

	// ErrSlotRange indicates a slot index outside [0, Len).
	ErrSlotRange = errors.New("tuple: slot index out of range")
)

// Dyn is a heterogeneous tuple whose arity is fixed at construction rather
// than at build time. It trades the static slot guarantees of Tuple1..Tuple8
// for runtime bounds checks: every out-of-range access is reported as
// ErrSlotRange (or a panic via MustAt), never a silently wrong value.
type Dyn struct {
	slots []any
}

// NewDyn builds a runtime-arity tuple from values, in argument order.
// Returns ErrEmptyTuple when called with no values.
// Complexity: O(N)
func NewDyn(values ...any) (Dyn, error) {
	if len(values) == 0 {
		return Dyn{}, ErrEmptyTuple
	}
	slots := make([]any, len(values))
	copy(slots, values)

	return Dyn{slots: slots}, nil
}

// Len reports the arity fixed at construction.
func (d Dyn) Len() int { return len(d.slots) }

// At returns the value in slot i, or ErrSlotRange when i is outside [0, Len).
func (d Dyn) At(i int) (any, error) {
	if i < 0 || i >= len(d.slots) {
		return nil, fmt.Errorf("%w: %d with arity %d", ErrSlotRange, i, len(d.slots))
	}

	return d.slots[i], nil
}

// MustAt returns the value in slot i, panicking on a range violation.
// Use At when the index is not known to be valid.
func (d Dyn) MustAt(i int) any {
	v, err := d.At(i)
	if err != nil {
		panic(err)
	}

	return v
}

// Set stores v in slot i, or returns ErrSlotRange when i is outside [0, Len).
// Only slot i is touched; the arity never changes after construction.
func (d *Dyn) Set(i int, v any) error {
	if i < 0 || i >= len(d.slots) {
		return fmt.Errorf("%w: %d with arity %d", ErrSlotRange, i, len(d.slots))
	}
	d.slots[i] = v

	return nil
}
