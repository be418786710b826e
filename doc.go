// Package genseq is a compact toolkit for statically-typed heterogeneous
// tuples and capability-driven sequence traversal.
//
// 🚀 What is genseq?
//
//	A small, dependency-light library that brings together:
//		• Fixed-arity tuples: one concrete generic struct per arity, every
//		  slot typed and bounds-checked during compilation
//		• Cursors: position markers over sequences, tagged by capability
//		  (steppable vs. offsettable) through plain interface satisfaction
//		• Advance: one traversal algorithm, two cost models — O(1) direct
//		  displacement when the cursor supports it, O(n) stepping otherwise
//		• Folds: variadic generic reductions (Sum, Min, Max, Fold, All, Any)
//
// ✨ Why choose genseq?
//
//   - Build-time safety – slot indices, arities and cursor capabilities are
//     checked by the compiler, not probed at runtime
//   - Predictable cost – the advance strategy is picked from the cursor's
//     static capability set, never by trial and fallback
//   - Pure Go – value semantics everywhere, no reflection, no cgo
//   - Observable – hook callbacks (OnStep, OnJump) expose exactly which
//     strategy ran and how many operations it took
//
// Everything is organized under four subpackages:
//
//	tuple/  — Tuple1..Tuple8 fixed-arity tuples + the runtime-arity Dyn
//	cursor/ — Stepper/Offsetter capabilities and the Advance/Jump/Walk family
//	seq/    — Vector (offsettable) and List (steppable) cursor-producing containers
//	fold/   — variadic generic reductions over ordered and numeric types
//
// Quick taste:
//
//	t := tuple.NewTuple3(42, 42.5, 'a') // Tuple3[int, float64, rune]
//	t.V0 = 7                            // slots are mutable, typed, checked at build time
//
//	v := seq.NewVector(1, 2, 3, 4, 5)
//	c, _ := cursor.Advance(v.Cursor(), 3) // one Offset call — Vector cursors are offsettable
//	val, _ := c.Value()                   // 4
//
// Dive into each package's doc.go for contracts, complexity and error
// semantics.
//
//	go get github.com/genseq/genseq
package genseq
