package fluent

import "fmt"

type always[T any] struct {
	value T
}

// Always consumes nothing and succeeds with value.
func Always[T any](value T) Parser[T] {
	return &always[T]{value: value}
}

func (a *always[T]) Parse(ctx *Context, res *Result[T]) bool {
	ctx.EnterParser(a)
	offset := ctx.Scanner.Cursor.Offset()
	res.Set(offset, offset, a.value)
	ctx.ExitParser(a, true)
	return true
}

func (a *always[T]) Compile(c *Compiler) (*Routine, error) {
	r := c.NewRoutine(a.String(), true)
	r.Start = c.DeclareOffset(r)
	r.Body = append(r.Body, MarkOffset(r.Start))
	if !r.Discards() {
		r.Body = append(r.Body, Const(r.Value, a.value))
	}
	return r, nil
}

// Seekable reports no facts: an empty match is possible before any character.
func (a *always[T]) Seekable() SeekInfo { return SeekInfo{} }

func (a *always[T]) String() string { return fmt.Sprintf("always(%v)", a.value) }
