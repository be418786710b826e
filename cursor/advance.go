// This file implements the advance family: one traversal entry point whose
// cost model (O(1) displacement vs. O(n) stepping) is decided by which
// interfaces the cursor type satisfies.

package cursor

import "fmt"

// Advance returns c moved n positions forward.
//
// Strategy selection is a property of C's capability set: when the cursor
// satisfies Offsetter[C], the move is one Offset call and OnJump fires once;
// otherwise the move is exactly n Step calls with OnStep firing per step.
// The capability is inspected once per call, before any movement — the
// displacement path is never attempted speculatively.
//
// Returns ErrNegativeStep for n < 0; n == 0 returns c unchanged.
func Advance[C Stepper[C]](c C, n int, opts ...Option) (C, error) {
	if n < 0 {
		return c, fmt.Errorf("%w: %d", ErrNegativeStep, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if off, ok := any(c).(Offsetter[C]); ok {
		o.OnJump(n)
		return off.Offset(n), nil
	}

	return step(c, n, o), nil
}

// Jump returns c moved n positions forward in a single displacement.
// The Offsetter constraint makes the capability demand part of the call
// site's build: a steppable-only cursor does not compile here.
//
// Returns ErrNegativeStep for n < 0.
func Jump[C Offsetter[C]](c C, n int, opts ...Option) (C, error) {
	if n < 0 {
		return c, fmt.Errorf("%w: %d", ErrNegativeStep, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.OnJump(n)

	return c.Offset(n), nil
}

// Walk returns c moved n positions forward by exactly n Step calls, ignoring
// any displacement capability. Advance on an offsettable cursor must land on
// the same position Walk does; Walk is the reference side of that contract.
//
// Returns ErrNegativeStep for n < 0.
func Walk[C Stepper[C]](c C, n int, opts ...Option) (C, error) {
	if n < 0 {
		return c, fmt.Errorf("%w: %d", ErrNegativeStep, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return step(c, n, o), nil
}

// step applies the single-step increment n times, firing OnStep after each.
func step[C Stepper[C]](c C, n int, o Options) C {
	for i := 1; i <= n; i++ {
		c = c.Step()
		o.OnStep(i)
	}

	return c
}
