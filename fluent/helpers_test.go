package fluent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type outcome[T any] struct {
	res    Result[T]
	ok     bool
	cursor int
}

func run[T any](p Parser[T], input string) outcome[T] {
	ctx := NewContext(input)
	var o outcome[T]
	o.ok = p.Parse(ctx, &o.res)
	o.cursor = ctx.Scanner.Cursor.Offset()
	return o
}

func mustCompile[T any](t *testing.T, p Parser[T], opts ...CompileOption) Parser[T] {
	t.Helper()
	c, err := Compile(p, opts...)
	require.NoError(t, err)
	return c
}

// probe counts its parses. It compiles to an interpreted call so compiled
// parsers count too.
type probe[T any] struct {
	Parser[T]
	calls int
}

func newProbe[T any](p Parser[T]) *probe[T] {
	return &probe[T]{Parser: p}
}

func (p *probe[T]) Parse(ctx *Context, res *Result[T]) bool {
	p.calls++
	return p.Parser.Parse(ctx, res)
}

func (p *probe[T]) Compile(c *Compiler) (*Routine, error) {
	return CompileInterpreted[T](c, p)
}

func lit(s string) Parser[string] { return Literal(s) }
