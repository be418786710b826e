// Package cursor defines capability-tagged position markers over sequences
// and the advance algorithm family that exploits them.
//
// What:
//
//   - Stepper[C]: the minimal cursor capability — Step() moves one position
//     forward and returns the advanced cursor by value.
//   - Offsetter[C]: a Stepper that can additionally displace by n positions
//     in a single Offset(n) call.
//   - Advance(c, n, opts...): moves a cursor n positions forward, choosing
//     the strategy from the cursor's capability set: one Offset call when the
//     cursor is offsettable, exactly n Step calls otherwise. The capability
//     check is a single interface upgrade per call (the io.ReaderFrom fast-path
//     idiom) — never per step, and never by attempting the displacement and
//     recovering from a failure.
//   - Jump(c, n, opts...): demands Offsetter at the call site. Passing a
//     steppable-only cursor does not compile, so callers that require the
//     O(1) path get the missing-capability diagnostic from the compiler.
//   - Walk(c, n, opts...): forces the stepping strategy regardless of
//     capability; the reference against which Advance's displacement path is
//     equivalence-tested.
//
// Why:
//   - Keep the cost model a property of the cursor's type: new cursor kinds
//     join by declaring their capability, not by editing the advance logic
//   - Make the chosen strategy observable: OnStep fires per applied step,
//     OnJump once per displacement
//
// Cursors are transient values: each call returns a new cursor and leaves
// its input untouched.
//
// Complexity:
//
//   - Advance / Jump on an offsettable cursor: O(1)
//   - Advance / Walk on a steppable cursor: O(n)
//
// Errors:
//
//   - ErrNegativeStep   n < 0; the advance family is defined for n ≥ 0 only,
//     and both strategies reject the violation identically
package cursor
