// Package tuple provides fixed-arity heterogeneous tuples with per-slot
// static typing, plus a runtime-arity fallback for arities that cannot be
// fixed during compilation.
//
// What:
//
//   - Tuple1..Tuple8: one concrete generic struct per arity. Slots V0..V7
//     hold one value each, in declaration order, each with its own type
//     parameter. A reference to a slot that does not exist for the arity
//     (t.V5 on a Tuple3) or a wrongly-typed assignment does not compile.
//   - NewTuple1..NewTuple8: constructors inferring every slot type from the
//     arguments. A zero-element tuple is unrepresentable: no zero-arity type
//     or constructor exists.
//   - First()..Eighth(): ordinal read accessors per arity; Len() reports the
//     arity.
//   - Dyn: an arity-checked []any tuple for slot counts unknown at build
//     time, trading the static slot guarantees for runtime bounds checks.
//
// Why:
//   - Return or carry several differently-typed values as one value without
//     declaring a one-off struct per call site
//   - Keep slot access bounds-checked by the compiler rather than by tests
//   - Mutate slots in place (exported fields) with no cross-slot aliasing
//
// Complexity:
//
//   - Construction, slot access, Len: O(1), no allocation beyond the value
//     itself
//   - Dyn construction: O(N) copy of the slot values
//
// Errors (Dyn only — fixed-arity tuples have no runtime error path):
//
//   - ErrEmptyTuple  NewDyn called with zero values
//   - ErrSlotRange   At/Set index outside [0, Len)
package tuple
