package fluent

import "fmt"

type seq2[A, B any] struct {
	a    Parser[A]
	b    Parser[B]
	seek SeekInfo
}

// And parses a then b and produces both values.
func And[A, B any](a Parser[A], b Parser[B]) Parser[Tuple2[A, B]] {
	mustHave("And", a, b)
	return &seq2[A, B]{a: a, b: b, seek: a.Seekable()}
}

func (s *seq2[A, B]) Seekable() SeekInfo { return s.seek }
func (s *seq2[A, B]) String() string     { return fmt.Sprintf("%s & %s", s.a, s.b) }

func (s *seq2[A, B]) Parse(ctx *Context, res *Result[Tuple2[A, B]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var a Result[A]
	if s.a.Parse(ctx, &a) {
		var b Result[B]
		if s.b.Parse(ctx, &b) {
			res.Set(a.Start, b.End, Tuple2[A, B]{a.Value, b.Value})
			ctx.ExitParser(s, true)
			return true
		}
		ctx.Scanner.Cursor.ResetPosition(start)
	}
	ctx.ExitParser(s, false)
	return false
}

func (s *seq2[A, B]) skippables(c *Compiler) ([]Skippable, error) {
	return compileSteps(c, keep(s.a), keep(s.b))
}

func (s *seq2[A, B]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple2[A, B]{Load[A](f, v[0]), Load[B](f, v[1])})
	}), nil
}

type seq3[A, B, C any] struct {
	head Parser[Tuple2[A, B]]
	last Parser[C]
	seek SeekInfo
}

// And3 extends a sequence of 2 values with one more child. The result
// is flat: Tuple3[A, B, C], not a nested tuple.
func And3[A, B, C any](head Parser[Tuple2[A, B]], last Parser[C]) Parser[Tuple3[A, B, C]] {
	mustHave("And3", head, last)
	return &seq3[A, B, C]{head: head, last: last, seek: head.Seekable()}
}

func (s *seq3[A, B, C]) Seekable() SeekInfo { return s.seek }
func (s *seq3[A, B, C]) String() string     { return fmt.Sprintf("%s & %s", s.head, s.last) }

func (s *seq3[A, B, C]) Parse(ctx *Context, res *Result[Tuple3[A, B, C]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var head Result[Tuple2[A, B]]
	if s.head.Parse(ctx, &head) {
		var last Result[C]
		if s.last.Parse(ctx, &last) {
			t := head.Value
			res.Set(head.Start, last.End, Tuple3[A, B, C]{t.A, t.B, last.Value})
			ctx.ExitParser(s, true)
			return true
		}
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *seq3[A, B, C]) skippables(c *Compiler) ([]Skippable, error) {
	return extendSequence(c, s.head, 2, keep(s.last))
}

func (s *seq3[A, B, C]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple3[A, B, C]{Load[A](f, v[0]), Load[B](f, v[1]), Load[C](f, v[2])})
	}), nil
}

type seq4[A, B, C, D any] struct {
	head Parser[Tuple3[A, B, C]]
	last Parser[D]
	seek SeekInfo
}

// And4 extends a sequence of 3 values with one more child. The result
// is flat: Tuple4[A, B, C, D], not a nested tuple.
func And4[A, B, C, D any](head Parser[Tuple3[A, B, C]], last Parser[D]) Parser[Tuple4[A, B, C, D]] {
	mustHave("And4", head, last)
	return &seq4[A, B, C, D]{head: head, last: last, seek: head.Seekable()}
}

func (s *seq4[A, B, C, D]) Seekable() SeekInfo { return s.seek }
func (s *seq4[A, B, C, D]) String() string     { return fmt.Sprintf("%s & %s", s.head, s.last) }

func (s *seq4[A, B, C, D]) Parse(ctx *Context, res *Result[Tuple4[A, B, C, D]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var head Result[Tuple3[A, B, C]]
	if s.head.Parse(ctx, &head) {
		var last Result[D]
		if s.last.Parse(ctx, &last) {
			t := head.Value
			res.Set(head.Start, last.End, Tuple4[A, B, C, D]{t.A, t.B, t.C, last.Value})
			ctx.ExitParser(s, true)
			return true
		}
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *seq4[A, B, C, D]) skippables(c *Compiler) ([]Skippable, error) {
	return extendSequence(c, s.head, 3, keep(s.last))
}

func (s *seq4[A, B, C, D]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple4[A, B, C, D]{Load[A](f, v[0]), Load[B](f, v[1]), Load[C](f, v[2]), Load[D](f, v[3])})
	}), nil
}

type seq5[A, B, C, D, E any] struct {
	head Parser[Tuple4[A, B, C, D]]
	last Parser[E]
	seek SeekInfo
}

// And5 extends a sequence of 4 values with one more child. The result
// is flat: Tuple5[A, B, C, D, E], not a nested tuple.
func And5[A, B, C, D, E any](head Parser[Tuple4[A, B, C, D]], last Parser[E]) Parser[Tuple5[A, B, C, D, E]] {
	mustHave("And5", head, last)
	return &seq5[A, B, C, D, E]{head: head, last: last, seek: head.Seekable()}
}

func (s *seq5[A, B, C, D, E]) Seekable() SeekInfo { return s.seek }
func (s *seq5[A, B, C, D, E]) String() string     { return fmt.Sprintf("%s & %s", s.head, s.last) }

func (s *seq5[A, B, C, D, E]) Parse(ctx *Context, res *Result[Tuple5[A, B, C, D, E]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var head Result[Tuple4[A, B, C, D]]
	if s.head.Parse(ctx, &head) {
		var last Result[E]
		if s.last.Parse(ctx, &last) {
			t := head.Value
			res.Set(head.Start, last.End, Tuple5[A, B, C, D, E]{t.A, t.B, t.C, t.D, last.Value})
			ctx.ExitParser(s, true)
			return true
		}
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *seq5[A, B, C, D, E]) skippables(c *Compiler) ([]Skippable, error) {
	return extendSequence(c, s.head, 4, keep(s.last))
}

func (s *seq5[A, B, C, D, E]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple5[A, B, C, D, E]{Load[A](f, v[0]), Load[B](f, v[1]), Load[C](f, v[2]), Load[D](f, v[3]), Load[E](f, v[4])})
	}), nil
}

type seq6[A, B, C, D, E, F any] struct {
	head Parser[Tuple5[A, B, C, D, E]]
	last Parser[F]
	seek SeekInfo
}

// And6 extends a sequence of 5 values with one more child. The result
// is flat: Tuple6[A, B, C, D, E, F], not a nested tuple.
func And6[A, B, C, D, E, F any](head Parser[Tuple5[A, B, C, D, E]], last Parser[F]) Parser[Tuple6[A, B, C, D, E, F]] {
	mustHave("And6", head, last)
	return &seq6[A, B, C, D, E, F]{head: head, last: last, seek: head.Seekable()}
}

func (s *seq6[A, B, C, D, E, F]) Seekable() SeekInfo { return s.seek }
func (s *seq6[A, B, C, D, E, F]) String() string     { return fmt.Sprintf("%s & %s", s.head, s.last) }

func (s *seq6[A, B, C, D, E, F]) Parse(ctx *Context, res *Result[Tuple6[A, B, C, D, E, F]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var head Result[Tuple5[A, B, C, D, E]]
	if s.head.Parse(ctx, &head) {
		var last Result[F]
		if s.last.Parse(ctx, &last) {
			t := head.Value
			res.Set(head.Start, last.End, Tuple6[A, B, C, D, E, F]{t.A, t.B, t.C, t.D, t.E, last.Value})
			ctx.ExitParser(s, true)
			return true
		}
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *seq6[A, B, C, D, E, F]) skippables(c *Compiler) ([]Skippable, error) {
	return extendSequence(c, s.head, 5, keep(s.last))
}

func (s *seq6[A, B, C, D, E, F]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple6[A, B, C, D, E, F]{Load[A](f, v[0]), Load[B](f, v[1]), Load[C](f, v[2]), Load[D](f, v[3]), Load[E](f, v[4]), Load[F](f, v[5])})
	}), nil
}

type seq7[A, B, C, D, E, F, G any] struct {
	head Parser[Tuple6[A, B, C, D, E, F]]
	last Parser[G]
	seek SeekInfo
}

// And7 extends a sequence of 6 values with one more child. The result
// is flat: Tuple7[A, B, C, D, E, F, G], not a nested tuple.
func And7[A, B, C, D, E, F, G any](head Parser[Tuple6[A, B, C, D, E, F]], last Parser[G]) Parser[Tuple7[A, B, C, D, E, F, G]] {
	mustHave("And7", head, last)
	return &seq7[A, B, C, D, E, F, G]{head: head, last: last, seek: head.Seekable()}
}

func (s *seq7[A, B, C, D, E, F, G]) Seekable() SeekInfo { return s.seek }
func (s *seq7[A, B, C, D, E, F, G]) String() string     { return fmt.Sprintf("%s & %s", s.head, s.last) }

func (s *seq7[A, B, C, D, E, F, G]) Parse(ctx *Context, res *Result[Tuple7[A, B, C, D, E, F, G]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var head Result[Tuple6[A, B, C, D, E, F]]
	if s.head.Parse(ctx, &head) {
		var last Result[G]
		if s.last.Parse(ctx, &last) {
			t := head.Value
			res.Set(head.Start, last.End, Tuple7[A, B, C, D, E, F, G]{t.A, t.B, t.C, t.D, t.E, t.F, last.Value})
			ctx.ExitParser(s, true)
			return true
		}
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *seq7[A, B, C, D, E, F, G]) skippables(c *Compiler) ([]Skippable, error) {
	return extendSequence(c, s.head, 6, keep(s.last))
}

func (s *seq7[A, B, C, D, E, F, G]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple7[A, B, C, D, E, F, G]{Load[A](f, v[0]), Load[B](f, v[1]), Load[C](f, v[2]), Load[D](f, v[3]), Load[E](f, v[4]), Load[F](f, v[5]), Load[G](f, v[6])})
	}), nil
}

type seq8[A, B, C, D, E, F, G, H any] struct {
	head Parser[Tuple7[A, B, C, D, E, F, G]]
	last Parser[H]
	seek SeekInfo
}

// And8 extends a sequence of 7 values with one more child. The result
// is flat: Tuple8[A, B, C, D, E, F, G, H], not a nested tuple.
func And8[A, B, C, D, E, F, G, H any](head Parser[Tuple7[A, B, C, D, E, F, G]], last Parser[H]) Parser[Tuple8[A, B, C, D, E, F, G, H]] {
	mustHave("And8", head, last)
	return &seq8[A, B, C, D, E, F, G, H]{head: head, last: last, seek: head.Seekable()}
}

func (s *seq8[A, B, C, D, E, F, G, H]) Seekable() SeekInfo { return s.seek }
func (s *seq8[A, B, C, D, E, F, G, H]) String() string     { return fmt.Sprintf("%s & %s", s.head, s.last) }

func (s *seq8[A, B, C, D, E, F, G, H]) Parse(ctx *Context, res *Result[Tuple8[A, B, C, D, E, F, G, H]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var head Result[Tuple7[A, B, C, D, E, F, G]]
	if s.head.Parse(ctx, &head) {
		var last Result[H]
		if s.last.Parse(ctx, &last) {
			t := head.Value
			res.Set(head.Start, last.End, Tuple8[A, B, C, D, E, F, G, H]{t.A, t.B, t.C, t.D, t.E, t.F, t.G, last.Value})
			ctx.ExitParser(s, true)
			return true
		}
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *seq8[A, B, C, D, E, F, G, H]) skippables(c *Compiler) ([]Skippable, error) {
	return extendSequence(c, s.head, 7, keep(s.last))
}

func (s *seq8[A, B, C, D, E, F, G, H]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple8[A, B, C, D, E, F, G, H]{Load[A](f, v[0]), Load[B](f, v[1]), Load[C](f, v[2]), Load[D](f, v[3]), Load[E](f, v[4]), Load[F](f, v[5]), Load[G](f, v[6]), Load[H](f, v[7])})
	}), nil
}
