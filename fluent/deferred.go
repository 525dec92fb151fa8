package fluent

import (
	"errors"
	"fmt"
)

var errDeferredUnset = errors.New("deferred parser has no target")

// Deferred is a forward reference, for grammars that refer to a rule before it
// is built. Set must be called once, before the grammar is used.
type Deferred[T any] struct {
	name   string
	target Parser[T]
}

func NewDeferred[T any](name string) *Deferred[T] {
	return &Deferred[T]{name: name}
}

// Set binds the reference.
func (d *Deferred[T]) Set(p Parser[T]) {
	mustHave("Deferred.Set", p)
	if d.target != nil {
		panic(fmt.Sprintf("fluent.Deferred: %s is already set", d.name))
	}
	d.target = p
}

// Recursive builds a parser that may refer to itself.
func Recursive[T any](name string, build func(self Parser[T]) Parser[T]) Parser[T] {
	d := NewDeferred[T](name)
	d.Set(build(d))
	return d
}

func (d *Deferred[T]) Parse(ctx *Context, res *Result[T]) bool {
	if d.target == nil {
		panic(fmt.Sprintf("fluent.Deferred: %s used before Set", d.name))
	}
	ctx.EnterParser(d)
	ok := d.target.Parse(ctx, res)
	ctx.ExitParser(d, ok)
	return ok
}

// Compile calls the target's routine, compiled once per compilation.
func (d *Deferred[T]) Compile(c *Compiler) (*Routine, error) {
	if d.target == nil {
		return nil, fmt.Errorf("%s: %w", d.name, errDeferredUnset)
	}
	sub, err := c.Shared(d, d.name, d.target.Compile)
	if err != nil {
		return nil, err
	}
	r := c.NewRoutine(d.String(), false)
	r.Start = c.DeclareOffset(r)
	r.Body = append(r.Body, Call(sub, r.Success, r.Start, r.Value))
	return r, nil
}

// Seekable reports no facts: the target may not exist yet when parents are
// built.
func (d *Deferred[T]) Seekable() SeekInfo { return SeekInfo{} }

func (d *Deferred[T]) String() string { return d.name }
