package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genseq/genseq/seq"
)

// TestList_Basics covers construction, Len and Push ordering.
func TestList_Basics(t *testing.T) {
	l := seq.NewList(1, 2, 3)
	require.Equal(t, 3, l.Len())

	l.Push(4)
	require.Equal(t, 4, l.Len())

	// Walk the full list and collect values in order.
	var got []int
	for c := l.Cursor(); c.Valid(); c = c.Step() {
		got = append(got, c.MustValue())
	}
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

// TestListCursor_StepSaturates verifies stepping past the last node pins the
// cursor on the invalid end position.
func TestListCursor_StepSaturates(t *testing.T) {
	l := seq.NewList("x", "y")

	c := l.Cursor().Step().Step()
	require.False(t, c.Valid())

	// Further steps stay at the end.
	c = c.Step()
	require.False(t, c.Valid())

	_, err := c.Value()
	require.ErrorIs(t, err, seq.ErrPastEnd)
	require.Panics(t, func() { _ = c.MustValue() })
}

// TestListCursor_ValueSemantics verifies stepping a cursor leaves the input
// cursor where it was.
func TestListCursor_ValueSemantics(t *testing.T) {
	l := seq.NewList(7, 8)
	c := l.Cursor()

	_ = c.Step()

	require.Equal(t, 7, c.MustValue())
}

// TestList_Empty verifies the cursor of an empty list starts invalid.
func TestList_Empty(t *testing.T) {
	l := seq.NewList[string]()
	require.Zero(t, l.Len())

	c := l.Cursor()
	require.False(t, c.Valid())
	_, err := c.Value()
	require.ErrorIs(t, err, seq.ErrPastEnd)
}
