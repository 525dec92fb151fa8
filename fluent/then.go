package fluent

import "fmt"

type then[T, U any] struct {
	p  Parser[T]
	fn func(T) U
}

// Then converts the value of p. Compiled routines that discard their result
// do not call fn.
func Then[T, U any](p Parser[T], fn func(T) U) Parser[U] {
	mustHave("Then", p)
	if fn == nil {
		panic("fluent.Then: nil function")
	}
	return &then[T, U]{p: p, fn: fn}
}

func (t *then[T, U]) Parse(ctx *Context, res *Result[U]) bool {
	ctx.EnterParser(t)
	var r Result[T]
	if t.p.Parse(ctx, &r) {
		res.Set(r.Start, r.End, t.fn(r.Value))
		ctx.ExitParser(t, true)
		return true
	}
	ctx.ExitParser(t, false)
	return false
}

func (t *then[T, U]) Compile(c *Compiler) (*Routine, error) {
	inner, err := t.p.Compile(c)
	if err != nil {
		return nil, err
	}
	r := wrap(t.String(), inner)
	r.Body = append(r.Body, inner.Body...)
	if c.Discard() {
		return r, nil
	}
	r.Value = c.DeclareValue(r)
	dst, src, fn := r.Value, inner.Value, t.fn
	r.Body = append(r.Body, If(inner.Success, []Stmt{
		Exec(fmt.Sprintf("%s = fn(%s)", dst, src), func(f *Frame) {
			Store(f, dst, fn(Load[T](f, src)))
		}),
	}, nil))
	return r, nil
}

func (t *then[T, U]) Seekable() SeekInfo { return t.p.Seekable() }
func (t *then[T, U]) String() string     { return t.p.String() }

type capture[T any] struct {
	p Parser[T]
}

// Capture matches p and produces the input text it consumed.
func Capture[T any](p Parser[T]) Parser[string] {
	mustHave("Capture", p)
	return &capture[T]{p: p}
}

func (cp *capture[T]) Parse(ctx *Context, res *Result[string]) bool {
	ctx.EnterParser(cp)
	var r Result[T]
	if cp.p.Parse(ctx, &r) {
		res.Set(r.Start, r.End, ctx.Scanner.Cursor.Slice(r.Start, r.End))
		ctx.ExitParser(cp, true)
		return true
	}
	ctx.ExitParser(cp, false)
	return false
}

// Compile never asks p for a value: the text comes from the span.
func (cp *capture[T]) Compile(c *Compiler) (*Routine, error) {
	inner, err := c.Discarding(true, cp.p.Compile)
	if err != nil {
		return nil, err
	}
	r := wrap(cp.String(), inner)
	r.Body = append(r.Body, inner.Body...)
	if c.Discard() {
		return r, nil
	}
	r.Value = c.DeclareValue(r)
	dst, start := r.Value, inner.Start
	r.Body = append(r.Body, If(inner.Success, []Stmt{
		Exec(fmt.Sprintf("%s = text(%s, offset())", dst, start), func(f *Frame) {
			cursor := f.Scanner().Cursor
			Store(f, dst, cursor.Slice(f.offsets[start], cursor.Offset()))
		}),
	}, nil))
	return r, nil
}

func (cp *capture[T]) Seekable() SeekInfo { return cp.p.Seekable() }
func (cp *capture[T]) String() string     { return cp.p.String() }
