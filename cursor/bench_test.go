package cursor_test

import (
	"testing"

	"github.com/genseq/genseq/cursor"
	"github.com/genseq/genseq/seq"
)

// BenchmarkAdvance_Offsettable measures the O(1) displacement strategy; the
// cost must not grow with N.
func BenchmarkAdvance_Offsettable(b *testing.B) {
	const N = 100000
	items := make([]int, N)
	for i := range items {
		items[i] = i
	}
	v := seq.NewVector(items...)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = cursor.Advance(v.Cursor(), N-1)
	}
}

// BenchmarkAdvance_Steppable measures the O(n) stepping strategy over the
// same element count.
func BenchmarkAdvance_Steppable(b *testing.B) {
	const N = 100000
	items := make([]int, N)
	for i := range items {
		items[i] = i
	}
	l := seq.NewList(items...)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = cursor.Advance(l.Cursor(), N-1)
	}
}
