package fluent

import (
	"fmt"
	"strings"
)

type list[T any] struct {
	ps   []Parser[T]
	seek SeekInfo
}

// Sequence matches every parser in order and produces their values. Like the
// tuple sequences it gives back all input when any parser fails.
func Sequence[T any](ps ...Parser[T]) Parser[[]T] {
	if len(ps) == 0 {
		panic("fluent.Sequence: no parsers")
	}
	for i, p := range ps {
		if p == nil {
			panic(fmt.Sprintf("fluent.Sequence: child %d is nil", i+1))
		}
	}
	return &list[T]{ps: ps, seek: ps[0].Seekable()}
}

func (l *list[T]) Parse(ctx *Context, res *Result[[]T]) bool {
	ctx.EnterParser(l)
	start := ctx.Scanner.Cursor.Position()
	values := make([]T, len(l.ps))
	first := 0
	for i, p := range l.ps {
		var r Result[T]
		if !p.Parse(ctx, &r) {
			ctx.Scanner.Cursor.ResetPosition(start)
			ctx.ExitParser(l, false)
			return false
		}
		if i == 0 {
			first = r.Start
		}
		values[i] = r.Value
	}
	res.Set(first, ctx.Scanner.Cursor.Offset(), values)
	ctx.ExitParser(l, true)
	return true
}

func (l *list[T]) skippables(c *Compiler) ([]Skippable, error) {
	steps := make([]step, len(l.ps))
	for i, p := range l.ps {
		steps[i] = keep(p)
	}
	return compileSteps(c, steps...)
}

func (l *list[T]) Compile(c *Compiler) (*Routine, error) {
	parts, err := l.skippables(c)
	if err != nil {
		return nil, err
	}
	return compileSequence(c, l.String(), parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		values := make([]T, len(v))
		for i := range v {
			values[i] = Load[T](f, v[i])
		}
		Store(f, dst, values)
	}), nil
}

func (l *list[T]) Seekable() SeekInfo { return l.seek }

func (l *list[T]) String() string {
	names := make([]string, len(l.ps))
	for i, p := range l.ps {
		names[i] = p.String()
	}
	return strings.Join(names, " & ")
}
