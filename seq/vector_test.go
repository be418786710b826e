package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genseq/genseq/seq"
)

// TestVector_Basics covers construction, Len, At and Set.
func TestVector_Basics(t *testing.T) {
	v := seq.NewVector(1, 2, 3)
	require.Equal(t, 3, v.Len())

	got, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 2, got)

	require.NoError(t, v.Set(1, 20))
	got, err = v.At(1)
	require.NoError(t, err)
	require.Equal(t, 20, got)

	v.Push(4)
	require.Equal(t, 4, v.Len())
}

// TestVector_IndexRange verifies out-of-range access is an error.
func TestVector_IndexRange(t *testing.T) {
	v := seq.NewVector("a")

	_, err := v.At(1)
	require.ErrorIs(t, err, seq.ErrIndexRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, seq.ErrIndexRange)
	require.ErrorIs(t, v.Set(3, "x"), seq.ErrIndexRange)
}

// TestVector_CopiesSeed verifies the constructor snapshots its arguments.
func TestVector_CopiesSeed(t *testing.T) {
	src := []int{1, 2, 3}
	v := seq.NewVector(src...)

	src[0] = 99

	got, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

// TestVectorCursor_StepAndOffset verifies single steps and displacement move
// through the same positions.
func TestVectorCursor_StepAndOffset(t *testing.T) {
	v := seq.NewVector("a", "b", "c", "d")

	c := v.Cursor()
	require.True(t, c.Valid())
	require.Equal(t, "a", c.MustValue())

	stepped := c.Step().Step()
	require.Equal(t, 2, stepped.Pos())
	require.Equal(t, "c", stepped.MustValue())

	jumped := c.Offset(2)
	require.Equal(t, stepped.Pos(), jumped.Pos())
	require.Equal(t, "c", jumped.MustValue())
}

// TestVectorCursor_ValueSemantics verifies moving a cursor leaves the input
// cursor where it was.
func TestVectorCursor_ValueSemantics(t *testing.T) {
	v := seq.NewVector(1, 2, 3)
	c := v.Cursor()

	_ = c.Step()
	_ = c.Offset(2)

	require.Zero(t, c.Pos())
	require.Equal(t, 1, c.MustValue())
}

// TestVectorCursor_Saturation verifies stepping and offsetting saturate on
// the same end position.
func TestVectorCursor_Saturation(t *testing.T) {
	v := seq.NewVector(1, 2)

	byStep := v.Cursor().Step().Step().Step()
	byJump := v.Cursor().Offset(9)

	require.Equal(t, v.Len(), byStep.Pos())
	require.Equal(t, byStep.Pos(), byJump.Pos())
	require.False(t, byJump.Valid())

	_, err := byJump.Value()
	require.ErrorIs(t, err, seq.ErrPastEnd)
	require.Panics(t, func() { _ = byJump.MustValue() })
}

// TestVectorCursor_Empty verifies the cursor of an empty vector starts
// invalid.
func TestVectorCursor_Empty(t *testing.T) {
	v := seq.NewVector[int]()
	c := v.Cursor()

	require.False(t, c.Valid())
	_, err := c.Value()
	require.ErrorIs(t, err, seq.ErrPastEnd)
}
