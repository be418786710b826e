package fold

import "golang.org/x/exp/constraints"

// Number permits any built-in numeric type that supports +.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns first + rest[0] + rest[1] + ... as a left fold.
// The mandatory first argument makes Sum() with no values a compile error.
func Sum[T Number](first T, rest ...T) T {
	acc := first
	for _, v := range rest {
		acc += v
	}

	return acc
}

// Min returns the smallest of its arguments under <.
func Min[T constraints.Ordered](first T, rest ...T) T {
	best := first
	for _, v := range rest {
		if v < best {
			best = v
		}
	}

	return best
}

// Max returns the largest of its arguments under <.
func Max[T constraints.Ordered](first T, rest ...T) T {
	best := first
	for _, v := range rest {
		if best < v {
			best = v
		}
	}

	return best
}

// Fold reduces items left to right: fn(fn(fn(init, i0), i1), i2)...
func Fold[E, A any](init A, fn func(acc A, item E) A, items ...E) A {
	acc := init
	for _, item := range items {
		acc = fn(acc, item)
	}

	return acc
}

// FoldRight reduces items right to left: fn(i0, fn(i1, fn(i2, init)))...
func FoldRight[E, A any](init A, fn func(item E, acc A) A, items ...E) A {
	acc := init
	for i := len(items) - 1; i >= 0; i-- {
		acc = fn(items[i], acc)
	}

	return acc
}

// All reports whether pred holds for every item. All of nothing is true.
func All[E any](pred func(E) bool, items ...E) bool {
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}

	return true
}

// Any reports whether pred holds for at least one item. Any of nothing is
// false.
func Any[E any](pred func(E) bool, items ...E) bool {
	for _, item := range items {
		if pred(item) {
			return true
		}
	}

	return false
}
