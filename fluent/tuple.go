package fluent

// Tuples produced by the sequence family. A sequence of N significant children
// always produces a TupleN, never a nested tuple.

type Tuple2[A, B any] struct {
	A A
	B B
}

type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

type Tuple6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

type Tuple8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

// tuple is implemented by every TupleN.
type tuple interface {
	fields() []any
}

func (t Tuple2[A, B]) fields() []any { return []any{t.A, t.B} }

func (t Tuple3[A, B, C]) fields() []any { return []any{t.A, t.B, t.C} }

func (t Tuple4[A, B, C, D]) fields() []any { return []any{t.A, t.B, t.C, t.D} }

func (t Tuple5[A, B, C, D, E]) fields() []any { return []any{t.A, t.B, t.C, t.D, t.E} }

func (t Tuple6[A, B, C, D, E, F]) fields() []any {
	return []any{t.A, t.B, t.C, t.D, t.E, t.F}
}

func (t Tuple7[A, B, C, D, E, F, G]) fields() []any {
	return []any{t.A, t.B, t.C, t.D, t.E, t.F, t.G}
}

func (t Tuple8[A, B, C, D, E, F, G, H]) fields() []any {
	return []any{t.A, t.B, t.C, t.D, t.E, t.F, t.G, t.H}
}
