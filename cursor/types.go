// This file declares the cursor capability interfaces, sentinel errors, and
// the functional options shared by the advance family.

package cursor

import "errors"

// ErrNegativeStep is returned when an advance is requested with n < 0.
// Negative displacement is rejected by every strategy so the two cost models
// can never silently diverge.
var ErrNegativeStep = errors.New("cursor: negative step count")

// Stepper is the minimal cursor capability: advance one position and return
// the resulting cursor. Implementations are value types; Step leaves the
// receiver untouched.
//
// The type parameter is the concrete cursor type itself (C Stepper[C]), so
// stepping never loses the concrete type.
type Stepper[C any] interface {
	Step() C
}

// Offsetter marks cursors that can displace by n positions in one operation.
// Satisfying Offsetter is the capability tag that switches Advance onto its
// O(1) strategy.
type Offsetter[C any] interface {
	Stepper[C]

	// Offset returns the cursor advanced n positions. Implementations must
	// agree position-for-position with applying Step n times.
	Offset(n int) C
}

// Option configures the advance family via functional arguments.
type Option func(*Options)

// Options holds the hook callbacks observed during an advance.
type Options struct {
	// OnStep is called after each applied single step, with the number of
	// steps applied so far (1-based).
	OnStep func(i int)

	// OnJump is called once when the displacement strategy runs, with the
	// requested offset.
	OnJump func(n int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnStep: func(int) {},
		OnJump: func(int) {},
	}
}

// WithOnStep registers a callback fired per applied single step.
func WithOnStep(fn func(i int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnJump registers a callback fired once per displacement.
func WithOnJump(fn func(n int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnJump = fn
		}
	}
}
