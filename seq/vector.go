package seq

import "fmt"

// Vector is a slice-backed sequence with O(1) positional access.
// Its cursor is offsettable: cursor.Advance moves it in one displacement.
type Vector[T any] struct {
	items []T
}

// NewVector builds a Vector seeded with items, in argument order.
// The input slice is copied; later mutation of the arguments does not reach
// the container.
// Complexity: O(N)
func NewVector[T any](items ...T) *Vector[T] {
	v := &Vector[T]{items: make([]T, len(items))}
	copy(v.items, items)

	return v
}

// Len reports the number of elements.
func (v *Vector[T]) Len() int { return len(v.items) }

// Push appends item to the end of the sequence.
// Complexity: amortized O(1)
func (v *Vector[T]) Push(item T) {
	v.items = append(v.items, item)
}

// At returns the element at index i, or ErrIndexRange when i is outside
// [0, Len).
func (v *Vector[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(v.items) {
		return zero, fmt.Errorf("%w: %d with length %d", ErrIndexRange, i, len(v.items))
	}

	return v.items[i], nil
}

// Set stores item at index i, or returns ErrIndexRange when i is outside
// [0, Len).
func (v *Vector[T]) Set(i int, item T) error {
	if i < 0 || i >= len(v.items) {
		return fmt.Errorf("%w: %d with length %d", ErrIndexRange, i, len(v.items))
	}
	v.items[i] = item

	return nil
}

// Cursor returns a cursor at position 0 (or at the end for an empty vector).
func (v *Vector[T]) Cursor() VectorCursor[T] {
	return VectorCursor[T]{vec: v}
}

// VectorCursor is a position marker over a Vector. It is a value type: Step
// and Offset return a new cursor and leave the receiver untouched.
//
// VectorCursor satisfies both cursor.Stepper and cursor.Offsetter, so the
// advance algorithm takes the O(1) displacement strategy.
type VectorCursor[T any] struct {
	vec *Vector[T]
	pos int
}

// Step returns the cursor advanced one position, saturating at the end.
func (c VectorCursor[T]) Step() VectorCursor[T] {
	return c.Offset(1)
}

// Offset returns the cursor displaced n positions in one operation.
// The result saturates into [0, Len]: landing past the last element yields
// the end position, exactly where n single steps would saturate.
func (c VectorCursor[T]) Offset(n int) VectorCursor[T] {
	pos := c.pos + n
	if limit := c.vec.Len(); pos > limit {
		pos = limit
	}
	if pos < 0 {
		pos = 0
	}

	return VectorCursor[T]{vec: c.vec, pos: pos}
}

// Pos reports the cursor's position; Pos == Len means past the last element.
func (c VectorCursor[T]) Pos() int { return c.pos }

// Valid reports whether the cursor addresses an element.
func (c VectorCursor[T]) Valid() bool { return c.pos < c.vec.Len() }

// Value returns the element under the cursor, or ErrPastEnd when the cursor
// has moved beyond the last element.
func (c VectorCursor[T]) Value() (T, error) {
	var zero T
	if !c.Valid() {
		return zero, fmt.Errorf("%w: position %d with length %d", ErrPastEnd, c.pos, c.vec.Len())
	}

	return c.vec.items[c.pos], nil
}

// MustValue returns the element under the cursor, panicking past the end.
// Use Value when validity is not known.
func (c VectorCursor[T]) MustValue() T {
	val, err := c.Value()
	if err != nil {
		panic(err)
	}

	return val
}
