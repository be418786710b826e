// Package seq provides concrete sequence containers whose cursors carry the
// two traversal capabilities the cursor package dispatches on.
//
// What:
//
//   - Vector[T]: a slice-backed sequence. Its VectorCursor supports both
//     Step and Offset, so cursor.Advance moves it with one O(1)
//     displacement.
//   - List[T]: a singly-linked sequence. Its ListCursor supports Step only —
//     deliberately no Offset — so cursor.Advance walks it one node at a time
//     and cursor.Jump on it is a compile error.
//
// Cursors are small value types produced by Cursor() at position 0. Stepping
// or offsetting returns a new cursor and leaves the input untouched. Both
// cursor kinds saturate at the end position: moving past the last element
// yields an invalid cursor (Valid() false, Value() → ErrPastEnd) on either
// strategy, never a wrong element.
//
// Why:
//   - Give the advance algorithm its two capability variants with real
//     storage layouts behind them: contiguous (random access is cheap) and
//     linked (only sequential access exists)
//   - Pin the behavioral equivalence of the two strategies on identical data
//
// Complexity:
//
//   - Vector: At O(1), Push amortized O(1), cursor Offset O(1)
//   - List: Push O(1) (tail pointer), cursor Step O(1), reaching position n
//     costs n steps
//
// Containers are not safe for concurrent mutation; cursors over an
// unchanging container may be shared freely.
//
// Errors:
//
//   - ErrIndexRange  Vector.At index outside [0, Len)
//   - ErrPastEnd     Value on a cursor positioned past the last element
package seq
