package tuple_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genseq/genseq/tuple"
)

// TestNewDyn_Empty verifies zero-value construction is rejected.
func TestNewDyn_Empty(t *testing.T) {
	_, err := tuple.NewDyn()
	require.ErrorIs(t, err, tuple.ErrEmptyTuple)
}

// TestDyn_RoundTrip verifies slot identity and arity.
func TestDyn_RoundTrip(t *testing.T) {
	d, err := tuple.NewDyn(42, 42.5, 'a')
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())

	v0, err := d.At(0)
	require.NoError(t, err)
	require.Equal(t, 42, v0)

	v1, err := d.At(1)
	require.NoError(t, err)
	require.Equal(t, 42.5, v1)

	v2, err := d.At(2)
	require.NoError(t, err)
	require.Equal(t, 'a', v2)
}

// TestDyn_SlotRange verifies out-of-range access is an error, not a value.
func TestDyn_SlotRange(t *testing.T) {
	d, err := tuple.NewDyn(1, 2)
	require.NoError(t, err)

	_, err = d.At(2)
	require.ErrorIs(t, err, tuple.ErrSlotRange)
	_, err = d.At(-1)
	require.ErrorIs(t, err, tuple.ErrSlotRange)

	require.ErrorIs(t, d.Set(5, "x"), tuple.ErrSlotRange)
}

// TestDyn_MustAt_Panics verifies the fail-fast accessor panics on violation.
func TestDyn_MustAt_Panics(t *testing.T) {
	d, err := tuple.NewDyn("only")
	require.NoError(t, err)

	require.Equal(t, "only", d.MustAt(0))
	require.Panics(t, func() { _ = d.MustAt(1) })
}

// TestDyn_Set verifies mutation touches exactly one slot.
func TestDyn_Set(t *testing.T) {
	d, err := tuple.NewDyn("a", "b", "c")
	require.NoError(t, err)

	require.NoError(t, d.Set(1, "B"))

	require.Equal(t, "a", d.MustAt(0))
	require.Equal(t, "B", d.MustAt(1))
	require.Equal(t, "c", d.MustAt(2))
}

// TestDyn_CopiesInput verifies the constructor snapshots its arguments.
func TestDyn_CopiesInput(t *testing.T) {
	src := []any{1, 2, 3}
	d, err := tuple.NewDyn(src...)
	require.NoError(t, err)

	src[0] = 99

	require.Equal(t, 1, d.MustAt(0))
}
