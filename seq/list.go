package seq

import "fmt"

// node is one cell of a singly-linked List.
type node[T any] struct {
	val  T
	next *node[T]
}

// List is a singly-linked sequence. Its cursor supports single steps only —
// no displacement capability — so the advance algorithm walks it node by
// node, and cursor.Jump on a ListCursor does not compile.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewList builds a List seeded with items, in argument order.
// Complexity: O(N)
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	for _, item := range items {
		l.Push(item)
	}

	return l
}

// Len reports the number of elements.
func (l *List[T]) Len() int { return l.size }

// Push appends item to the end of the sequence.
// Complexity: O(1)
func (l *List[T]) Push(item T) {
	n := &node[T]{val: item}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Cursor returns a cursor at the first element (invalid for an empty list).
func (l *List[T]) Cursor() ListCursor[T] {
	return ListCursor[T]{node: l.head}
}

// ListCursor is a position marker over a List. It is a value type: Step
// returns a new cursor and leaves the receiver untouched.
//
// ListCursor satisfies cursor.Stepper only. The missing Offset method is the
// capability statement: reaching position n costs n steps.
type ListCursor[T any] struct {
	node *node[T]
}

// Step returns the cursor advanced one node, saturating once past the end.
func (c ListCursor[T]) Step() ListCursor[T] {
	if c.node == nil {
		return c
	}

	return ListCursor[T]{node: c.node.next}
}

// Valid reports whether the cursor addresses an element.
func (c ListCursor[T]) Valid() bool { return c.node != nil }

// Value returns the element under the cursor, or ErrPastEnd when the cursor
// has moved beyond the last element.
func (c ListCursor[T]) Value() (T, error) {
	var zero T
	if c.node == nil {
		return zero, fmt.Errorf("%w: list cursor exhausted", ErrPastEnd)
	}

	return c.node.val, nil
}

// MustValue returns the element under the cursor, panicking past the end.
// Use Value when validity is not known.
func (c ListCursor[T]) MustValue() T {
	val, err := c.Value()
	if err != nil {
		panic(err)
	}

	return val
}
