package fluent

import "fmt"

type andSkip2[A, B any] struct {
	a    Parser[A]
	b    Parser[B]
	seek SeekInfo
}

// AndSkip parses a then b and produces the value of a.
func AndSkip[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	mustHave("AndSkip", a, b)
	return &andSkip2[A, B]{a: a, b: b, seek: a.Seekable()}
}

func (s *andSkip2[A, B]) Seekable() SeekInfo { return s.seek }
func (s *andSkip2[A, B]) String() string     { return fmt.Sprintf("%s & skip(%s)", s.a, s.b) }

func (s *andSkip2[A, B]) Parse(ctx *Context, res *Result[A]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var a Result[A]
	if s.a.Parse(ctx, &a) {
		var b Result[B]
		if s.b.Parse(ctx, &b) {
			res.Set(a.Start, b.End, a.Value)
			ctx.ExitParser(s, true)
			return true
		}
		ctx.Scanner.Cursor.ResetPosition(start)
	}
	ctx.ExitParser(s, false)
	return false
}

func (s *andSkip2[A, B]) skippables(c *Compiler) ([]Skippable, error) {
	return compileSteps(c, keep(s.a), skip(s.b))
}

func (s *andSkip2[A, B]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Load[A](f, v[0]))
	}), nil
}

type skipAnd2[A, B any] struct {
	a    Parser[A]
	b    Parser[B]
	seek SeekInfo
}

// SkipAnd parses a then b and produces the value of b.
func SkipAnd[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	mustHave("SkipAnd", a, b)
	return &skipAnd2[A, B]{a: a, b: b, seek: a.Seekable()}
}

func (s *skipAnd2[A, B]) Seekable() SeekInfo { return s.seek }
func (s *skipAnd2[A, B]) String() string     { return fmt.Sprintf("skip(%s) & %s", s.a, s.b) }

func (s *skipAnd2[A, B]) Parse(ctx *Context, res *Result[B]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var a Result[A]
	if s.a.Parse(ctx, &a) {
		var b Result[B]
		if s.b.Parse(ctx, &b) {
			res.Set(a.Start, b.End, b.Value)
			ctx.ExitParser(s, true)
			return true
		}
		ctx.Scanner.Cursor.ResetPosition(start)
	}
	ctx.ExitParser(s, false)
	return false
}

func (s *skipAnd2[A, B]) skippables(c *Compiler) ([]Skippable, error) {
	return compileSteps(c, skip(s.a), keep(s.b))
}

func (s *skipAnd2[A, B]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Load[B](f, v[0]))
	}), nil
}

type andSkip3[A, B, C any] struct {
	head Parser[Tuple2[A, B]]
	last Parser[C]
	seek SeekInfo
}

// AndSkip3 extends a sequence of 2 values with a child that must match
// but whose value is dropped.
func AndSkip3[A, B, C any](head Parser[Tuple2[A, B]], last Parser[C]) Parser[Tuple2[A, B]] {
	mustHave("AndSkip3", head, last)
	return &andSkip3[A, B, C]{head: head, last: last, seek: head.Seekable()}
}

func (s *andSkip3[A, B, C]) Seekable() SeekInfo { return s.seek }
func (s *andSkip3[A, B, C]) String() string     { return fmt.Sprintf("%s & skip(%s)", s.head, s.last) }

func (s *andSkip3[A, B, C]) Parse(ctx *Context, res *Result[Tuple2[A, B]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var head Result[Tuple2[A, B]]
	if s.head.Parse(ctx, &head) {
		var last Result[C]
		if s.last.Parse(ctx, &last) {
			res.Set(head.Start, last.End, head.Value)
			ctx.ExitParser(s, true)
			return true
		}
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *andSkip3[A, B, C]) skippables(c *Compiler) ([]Skippable, error) {
	return extendSequence(c, s.head, 2, skip(s.last))
}

func (s *andSkip3[A, B, C]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple2[A, B]{Load[A](f, v[0]), Load[B](f, v[1])})
	}), nil
}

type andSkip4[A, B, C, D any] struct {
	head Parser[Tuple3[A, B, C]]
	last Parser[D]
	seek SeekInfo
}

// AndSkip4 extends a sequence of 3 values with a child that must match
// but whose value is dropped.
func AndSkip4[A, B, C, D any](head Parser[Tuple3[A, B, C]], last Parser[D]) Parser[Tuple3[A, B, C]] {
	mustHave("AndSkip4", head, last)
	return &andSkip4[A, B, C, D]{head: head, last: last, seek: head.Seekable()}
}

func (s *andSkip4[A, B, C, D]) Seekable() SeekInfo { return s.seek }
func (s *andSkip4[A, B, C, D]) String() string     { return fmt.Sprintf("%s & skip(%s)", s.head, s.last) }

func (s *andSkip4[A, B, C, D]) Parse(ctx *Context, res *Result[Tuple3[A, B, C]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var head Result[Tuple3[A, B, C]]
	if s.head.Parse(ctx, &head) {
		var last Result[D]
		if s.last.Parse(ctx, &last) {
			res.Set(head.Start, last.End, head.Value)
			ctx.ExitParser(s, true)
			return true
		}
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *andSkip4[A, B, C, D]) skippables(c *Compiler) ([]Skippable, error) {
	return extendSequence(c, s.head, 3, skip(s.last))
}

func (s *andSkip4[A, B, C, D]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple3[A, B, C]{Load[A](f, v[0]), Load[B](f, v[1]), Load[C](f, v[2])})
	}), nil
}

type andSkip5[A, B, C, D, E any] struct {
	head Parser[Tuple4[A, B, C, D]]
	last Parser[E]
	seek SeekInfo
}

// AndSkip5 extends a sequence of 4 values with a child that must match
// but whose value is dropped.
func AndSkip5[A, B, C, D, E any](head Parser[Tuple4[A, B, C, D]], last Parser[E]) Parser[Tuple4[A, B, C, D]] {
	mustHave("AndSkip5", head, last)
	return &andSkip5[A, B, C, D, E]{head: head, last: last, seek: head.Seekable()}
}

func (s *andSkip5[A, B, C, D, E]) Seekable() SeekInfo { return s.seek }
func (s *andSkip5[A, B, C, D, E]) String() string     { return fmt.Sprintf("%s & skip(%s)", s.head, s.last) }

func (s *andSkip5[A, B, C, D, E]) Parse(ctx *Context, res *Result[Tuple4[A, B, C, D]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var head Result[Tuple4[A, B, C, D]]
	if s.head.Parse(ctx, &head) {
		var last Result[E]
		if s.last.Parse(ctx, &last) {
			res.Set(head.Start, last.End, head.Value)
			ctx.ExitParser(s, true)
			return true
		}
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *andSkip5[A, B, C, D, E]) skippables(c *Compiler) ([]Skippable, error) {
	return extendSequence(c, s.head, 4, skip(s.last))
}

func (s *andSkip5[A, B, C, D, E]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple4[A, B, C, D]{Load[A](f, v[0]), Load[B](f, v[1]), Load[C](f, v[2]), Load[D](f, v[3])})
	}), nil
}

type andSkip6[A, B, C, D, E, F any] struct {
	head Parser[Tuple5[A, B, C, D, E]]
	last Parser[F]
	seek SeekInfo
}

// AndSkip6 extends a sequence of 5 values with a child that must match
// but whose value is dropped.
func AndSkip6[A, B, C, D, E, F any](head Parser[Tuple5[A, B, C, D, E]], last Parser[F]) Parser[Tuple5[A, B, C, D, E]] {
	mustHave("AndSkip6", head, last)
	return &andSkip6[A, B, C, D, E, F]{head: head, last: last, seek: head.Seekable()}
}

func (s *andSkip6[A, B, C, D, E, F]) Seekable() SeekInfo { return s.seek }
func (s *andSkip6[A, B, C, D, E, F]) String() string     { return fmt.Sprintf("%s & skip(%s)", s.head, s.last) }

func (s *andSkip6[A, B, C, D, E, F]) Parse(ctx *Context, res *Result[Tuple5[A, B, C, D, E]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var head Result[Tuple5[A, B, C, D, E]]
	if s.head.Parse(ctx, &head) {
		var last Result[F]
		if s.last.Parse(ctx, &last) {
			res.Set(head.Start, last.End, head.Value)
			ctx.ExitParser(s, true)
			return true
		}
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *andSkip6[A, B, C, D, E, F]) skippables(c *Compiler) ([]Skippable, error) {
	return extendSequence(c, s.head, 5, skip(s.last))
}

func (s *andSkip6[A, B, C, D, E, F]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple5[A, B, C, D, E]{Load[A](f, v[0]), Load[B](f, v[1]), Load[C](f, v[2]), Load[D](f, v[3]), Load[E](f, v[4])})
	}), nil
}

type andSkip7[A, B, C, D, E, F, G any] struct {
	head Parser[Tuple6[A, B, C, D, E, F]]
	last Parser[G]
	seek SeekInfo
}

// AndSkip7 extends a sequence of 6 values with a child that must match
// but whose value is dropped.
func AndSkip7[A, B, C, D, E, F, G any](head Parser[Tuple6[A, B, C, D, E, F]], last Parser[G]) Parser[Tuple6[A, B, C, D, E, F]] {
	mustHave("AndSkip7", head, last)
	return &andSkip7[A, B, C, D, E, F, G]{head: head, last: last, seek: head.Seekable()}
}

func (s *andSkip7[A, B, C, D, E, F, G]) Seekable() SeekInfo { return s.seek }
func (s *andSkip7[A, B, C, D, E, F, G]) String() string     { return fmt.Sprintf("%s & skip(%s)", s.head, s.last) }

func (s *andSkip7[A, B, C, D, E, F, G]) Parse(ctx *Context, res *Result[Tuple6[A, B, C, D, E, F]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var head Result[Tuple6[A, B, C, D, E, F]]
	if s.head.Parse(ctx, &head) {
		var last Result[G]
		if s.last.Parse(ctx, &last) {
			res.Set(head.Start, last.End, head.Value)
			ctx.ExitParser(s, true)
			return true
		}
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *andSkip7[A, B, C, D, E, F, G]) skippables(c *Compiler) ([]Skippable, error) {
	return extendSequence(c, s.head, 6, skip(s.last))
}

func (s *andSkip7[A, B, C, D, E, F, G]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple6[A, B, C, D, E, F]{Load[A](f, v[0]), Load[B](f, v[1]), Load[C](f, v[2]), Load[D](f, v[3]), Load[E](f, v[4]), Load[F](f, v[5])})
	}), nil
}

type andSkip8[A, B, C, D, E, F, G, H any] struct {
	head Parser[Tuple7[A, B, C, D, E, F, G]]
	last Parser[H]
	seek SeekInfo
}

// AndSkip8 extends a sequence of 7 values with a child that must match
// but whose value is dropped.
func AndSkip8[A, B, C, D, E, F, G, H any](head Parser[Tuple7[A, B, C, D, E, F, G]], last Parser[H]) Parser[Tuple7[A, B, C, D, E, F, G]] {
	mustHave("AndSkip8", head, last)
	return &andSkip8[A, B, C, D, E, F, G, H]{head: head, last: last, seek: head.Seekable()}
}

func (s *andSkip8[A, B, C, D, E, F, G, H]) Seekable() SeekInfo { return s.seek }
func (s *andSkip8[A, B, C, D, E, F, G, H]) String() string     { return fmt.Sprintf("%s & skip(%s)", s.head, s.last) }

func (s *andSkip8[A, B, C, D, E, F, G, H]) Parse(ctx *Context, res *Result[Tuple7[A, B, C, D, E, F, G]]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	var head Result[Tuple7[A, B, C, D, E, F, G]]
	if s.head.Parse(ctx, &head) {
		var last Result[H]
		if s.last.Parse(ctx, &last) {
			res.Set(head.Start, last.End, head.Value)
			ctx.ExitParser(s, true)
			return true
		}
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *andSkip8[A, B, C, D, E, F, G, H]) skippables(c *Compiler) ([]Skippable, error) {
	return extendSequence(c, s.head, 7, skip(s.last))
}

func (s *andSkip8[A, B, C, D, E, F, G, H]) Compile(c *Compiler) (*Routine, error) {
	parts, err := s.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, s.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		Store(f, dst, Tuple7[A, B, C, D, E, F, G]{Load[A](f, v[0]), Load[B](f, v[1]), Load[C](f, v[2]), Load[D](f, v[3]), Load[E](f, v[4]), Load[F](f, v[5]), Load[G](f, v[6])})
	}), nil
}
