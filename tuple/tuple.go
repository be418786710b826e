// This file declares the fixed-arity tuple structs Tuple1..Tuple8 and their
// constructors. One concrete struct per arity keeps every slot statically
// typed: the compiler rejects out-of-range slots and mistyped assignments.

package tuple

// Tuple1 holds a single value.
type Tuple1[A any] struct {
	V0 A
}

// NewTuple1 builds a one-slot tuple from v0.
func NewTuple1[A any](v0 A) Tuple1[A] {
	return Tuple1[A]{V0: v0}
}

// First returns slot 0.
func (t Tuple1[A]) First() A { return t.V0 }

// Len reports the arity.
func (t Tuple1[A]) Len() int { return 1 }

// Tuple2 holds two values of independent types, in declaration order.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

// NewTuple2 builds a two-slot tuple from v0, v1.
func NewTuple2[A, B any](v0 A, v1 B) Tuple2[A, B] {
	return Tuple2[A, B]{V0: v0, V1: v1}
}

// First returns slot 0.
func (t Tuple2[A, B]) First() A { return t.V0 }

// Second returns slot 1.
func (t Tuple2[A, B]) Second() B { return t.V1 }

// Len reports the arity.
func (t Tuple2[A, B]) Len() int { return 2 }

// Unpack returns all slots in declaration order.
func (t Tuple2[A, B]) Unpack() (A, B) { return t.V0, t.V1 }

// Tuple3 holds three values of independent types, in declaration order.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// NewTuple3 builds a three-slot tuple from v0, v1, v2.
func NewTuple3[A, B, C any](v0 A, v1 B, v2 C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{V0: v0, V1: v1, V2: v2}
}

// First returns slot 0.
func (t Tuple3[A, B, C]) First() A { return t.V0 }

// Second returns slot 1.
func (t Tuple3[A, B, C]) Second() B { return t.V1 }

// Third returns slot 2.
func (t Tuple3[A, B, C]) Third() C { return t.V2 }

// Len reports the arity.
func (t Tuple3[A, B, C]) Len() int { return 3 }

// Unpack returns all slots in declaration order.
func (t Tuple3[A, B, C]) Unpack() (A, B, C) { return t.V0, t.V1, t.V2 }

// Tuple4 holds four values of independent types, in declaration order.
type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// NewTuple4 builds a four-slot tuple from v0..v3.
func NewTuple4[A, B, C, D any](v0 A, v1 B, v2 C, v3 D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{V0: v0, V1: v1, V2: v2, V3: v3}
}

// First returns slot 0.
func (t Tuple4[A, B, C, D]) First() A { return t.V0 }

// Second returns slot 1.
func (t Tuple4[A, B, C, D]) Second() B { return t.V1 }

// Third returns slot 2.
func (t Tuple4[A, B, C, D]) Third() C { return t.V2 }

// Fourth returns slot 3.
func (t Tuple4[A, B, C, D]) Fourth() D { return t.V3 }

// Len reports the arity.
func (t Tuple4[A, B, C, D]) Len() int { return 4 }

// Unpack returns all slots in declaration order.
func (t Tuple4[A, B, C, D]) Unpack() (A, B, C, D) { return t.V0, t.V1, t.V2, t.V3 }

// Tuple5 holds five values of independent types, in declaration order.
type Tuple5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

// NewTuple5 builds a five-slot tuple from v0..v4.
func NewTuple5[A, B, C, D, E any](v0 A, v1 B, v2 C, v3 D, v4 E) Tuple5[A, B, C, D, E] {
	return Tuple5[A, B, C, D, E]{V0: v0, V1: v1, V2: v2, V3: v3, V4: v4}
}

// First returns slot 0.
func (t Tuple5[A, B, C, D, E]) First() A { return t.V0 }

// Second returns slot 1.
func (t Tuple5[A, B, C, D, E]) Second() B { return t.V1 }

// Third returns slot 2.
func (t Tuple5[A, B, C, D, E]) Third() C { return t.V2 }

// Fourth returns slot 3.
func (t Tuple5[A, B, C, D, E]) Fourth() D { return t.V3 }

// Fifth returns slot 4.
func (t Tuple5[A, B, C, D, E]) Fifth() E { return t.V4 }

// Len reports the arity.
func (t Tuple5[A, B, C, D, E]) Len() int { return 5 }

// Tuple6 holds six values of independent types, in declaration order.
type Tuple6[A, B, C, D, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

// NewTuple6 builds a six-slot tuple from v0..v5.
func NewTuple6[A, B, C, D, E, F any](v0 A, v1 B, v2 C, v3 D, v4 E, v5 F) Tuple6[A, B, C, D, E, F] {
	return Tuple6[A, B, C, D, E, F]{V0: v0, V1: v1, V2: v2, V3: v3, V4: v4, V5: v5}
}

// First returns slot 0.
func (t Tuple6[A, B, C, D, E, F]) First() A { return t.V0 }

// Second returns slot 1.
func (t Tuple6[A, B, C, D, E, F]) Second() B { return t.V1 }

// Third returns slot 2.
func (t Tuple6[A, B, C, D, E, F]) Third() C { return t.V2 }

// Fourth returns slot 3.
func (t Tuple6[A, B, C, D, E, F]) Fourth() D { return t.V3 }

// Fifth returns slot 4.
func (t Tuple6[A, B, C, D, E, F]) Fifth() E { return t.V4 }

// Sixth returns slot 5.
func (t Tuple6[A, B, C, D, E, F]) Sixth() F { return t.V5 }

// Len reports the arity.
func (t Tuple6[A, B, C, D, E, F]) Len() int { return 6 }

// Tuple7 holds seven values of independent types, in declaration order.
type Tuple7[A, B, C, D, E, F, G any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
}

// NewTuple7 builds a seven-slot tuple from v0..v6.
func NewTuple7[A, B, C, D, E, F, G any](v0 A, v1 B, v2 C, v3 D, v4 E, v5 F, v6 G) Tuple7[A, B, C, D, E, F, G] {
	return Tuple7[A, B, C, D, E, F, G]{V0: v0, V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6}
}

// First returns slot 0.
func (t Tuple7[A, B, C, D, E, F, G]) First() A { return t.V0 }

// Second returns slot 1.
func (t Tuple7[A, B, C, D, E, F, G]) Second() B { return t.V1 }

// Third returns slot 2.
func (t Tuple7[A, B, C, D, E, F, G]) Third() C { return t.V2 }

// Fourth returns slot 3.
func (t Tuple7[A, B, C, D, E, F, G]) Fourth() D { return t.V3 }

// Fifth returns slot 4.
func (t Tuple7[A, B, C, D, E, F, G]) Fifth() E { return t.V4 }

// Sixth returns slot 5.
func (t Tuple7[A, B, C, D, E, F, G]) Sixth() F { return t.V5 }

// Seventh returns slot 6.
func (t Tuple7[A, B, C, D, E, F, G]) Seventh() G { return t.V6 }

// Len reports the arity.
func (t Tuple7[A, B, C, D, E, F, G]) Len() int { return 7 }

// Tuple8 holds eight values of independent types, in declaration order.
type Tuple8[A, B, C, D, E, F, G, H any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
}

// NewTuple8 builds an eight-slot tuple from v0..v7.
// For arities beyond eight, or arities unknown at build time, use Dyn.
func NewTuple8[A, B, C, D, E, F, G, H any](v0 A, v1 B, v2 C, v3 D, v4 E, v5 F, v6 G, v7 H) Tuple8[A, B, C, D, E, F, G, H] {
	return Tuple8[A, B, C, D, E, F, G, H]{V0: v0, V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7}
}

// First returns slot 0.
func (t Tuple8[A, B, C, D, E, F, G, H]) First() A { return t.V0 }

// Second returns slot 1.
func (t Tuple8[A, B, C, D, E, F, G, H]) Second() B { return t.V1 }

// Third returns slot 2.
func (t Tuple8[A, B, C, D, E, F, G, H]) Third() C { return t.V2 }

// Fourth returns slot 3.
func (t Tuple8[A, B, C, D, E, F, G, H]) Fourth() D { return t.V3 }

// Fifth returns slot 4.
func (t Tuple8[A, B, C, D, E, F, G, H]) Fifth() E { return t.V4 }

// Sixth returns slot 5.
func (t Tuple8[A, B, C, D, E, F, G, H]) Sixth() F { return t.V5 }

// Seventh returns slot 6.
func (t Tuple8[A, B, C, D, E, F, G, H]) Seventh() G { return t.V6 }

// Eighth returns slot 7.
func (t Tuple8[A, B, C, D, E, F, G, H]) Eighth() H { return t.V7 }

// Len reports the arity.
func (t Tuple8[A, B, C, D, E, F, G, H]) Len() int { return 8 }
