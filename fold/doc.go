// Package fold provides variadic generic reductions over sequences of
// arguments.
//
// What:
//
//   - Sum: left fold over + for any integer or float type
//   - Min / Max: extremum over any ordered type (integers, floats, strings)
//   - Fold / FoldRight: general left and right folds with an explicit
//     accumulator
//   - All / Any: predicate quantifiers
//
// Sum, Min and Max take a mandatory first argument: the empty reduction has
// no identity for these operations, so a zero-argument call is rejected by
// the compiler rather than producing a made-up value at runtime.
//
// Complexity: every function is a single O(N) pass, no allocation.
//
// There is no runtime error path in this package.
package fold
