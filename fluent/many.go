package fluent

import "fmt"

type zeroOrMany[T any] struct {
	p Parser[T]
}

// ZeroOrMany matches p as often as possible and always succeeds. It stops
// early when p matches without consuming anything. The span runs from the
// offset on entry to the offset on exit.
func ZeroOrMany[T any](p Parser[T]) Parser[[]T] {
	mustHave("ZeroOrMany", p)
	return &zeroOrMany[T]{p: p}
}

func (z *zeroOrMany[T]) Parse(ctx *Context, res *Result[[]T]) bool {
	ctx.EnterParser(z)
	cursor := ctx.Scanner.Cursor
	start := cursor.Offset()
	var values []T
	for {
		before := cursor.Offset()
		var r Result[T]
		if !z.p.Parse(ctx, &r) {
			break
		}
		values = append(values, r.Value)
		if cursor.Offset() == before {
			break
		}
	}
	res.Set(start, cursor.Offset(), values)
	ctx.ExitParser(z, true)
	return true
}

func (z *zeroOrMany[T]) Compile(c *Compiler) (*Routine, error) {
	inner, err := z.p.Compile(c)
	if err != nil {
		return nil, err
	}
	r := c.NewRoutine(z.String(), true)
	r.Start = c.DeclareOffset(r)
	r.adopt(inner)
	r.Body = append(r.Body, MarkOffset(r.Start))

	var each []Stmt
	if value := r.Value; value != NoValue {
		item := inner.Value
		r.Body = append(r.Body, Exec(fmt.Sprintf("%s = []", value), func(f *Frame) {
			Store(f, value, []T(nil))
		}))
		each = append(each, Exec(fmt.Sprintf("%s = append(%s, %s)", value, value, item), func(f *Frame) {
			Store(f, value, append(Load[[]T](f, value), Load[T](f, item)))
		}))
	}
	r.Body = append(r.Body, Loop(inner.Body, inner.Success, each))
	return r, nil
}

func (z *zeroOrMany[T]) Seekable() SeekInfo { return SeekInfo{} }
func (z *zeroOrMany[T]) String() string     { return fmt.Sprintf("{%s}", z.p) }

// Optional matches p or, failing that, nothing, producing def.
func Optional[T any](p Parser[T], def T) Parser[T] {
	mustHave("Optional", p)
	return OneOf(p, Always(def))
}
