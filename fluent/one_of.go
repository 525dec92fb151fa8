package fluent

import (
	"fmt"
	"strings"
)

type oneOf[T any] struct {
	alts  []Parser[T]
	seeks []SeekInfo
	seek  SeekInfo
}

// OneOf tries alternatives in order and produces the first match.
// Alternatives whose seek facts reject the next character are not tried.
func OneOf[T any](alts ...Parser[T]) Parser[T] {
	if len(alts) == 0 {
		panic("fluent.OneOf: no alternatives")
	}
	o := &oneOf[T]{alts: alts, seeks: make([]SeekInfo, len(alts))}
	for i, alt := range alts {
		if alt == nil {
			panic(fmt.Sprintf("fluent.OneOf: alternative %d is nil", i+1))
		}
		o.seeks[i] = alt.Seekable()
	}
	o.seek = unionSeek(o.seeks...)
	return o
}

func (o *oneOf[T]) Parse(ctx *Context, res *Result[T]) bool {
	ctx.EnterParser(o)
	next := lookahead{scanner: ctx.Scanner}
	for i, alt := range o.alts {
		if !next.accepts(o.seeks[i]) {
			continue
		}
		if alt.Parse(ctx, res) {
			ctx.ExitParser(o, true)
			return true
		}
	}
	ctx.ExitParser(o, false)
	return false
}

func (o *oneOf[T]) Compile(c *Compiler) (*Routine, error) {
	r := c.NewRoutine(o.String(), false)
	r.Start = c.DeclareOffset(r)
	for i, alt := range o.alts {
		ar, err := alt.Compile(c)
		if err != nil {
			return nil, err
		}
		r.adopt(ar)

		success, start, value := r.Success, r.Start, r.Value
		label := fmt.Sprintf("%s = true; %s = %s; %s = %s", success, start, ar.Start, value, ar.Value)
		take := Exec(label, func(f *Frame) {
			f.flags[success] = true
			f.offsets[start] = f.offsets[ar.Start]
			if value != NoValue {
				f.values[value] = f.values[ar.Value]
			}
		})
		block := make([]Stmt, 0, len(ar.Body)+1)
		block = append(block, ar.Body...)
		block = append(block, If(ar.Success, []Stmt{take}, nil))

		if seek := o.seeks[i]; seek.CanSeek {
			guard := c.DeclareFlag(r)
			block = []Stmt{
				Exec(fmt.Sprintf("%s = accepts(%q)", guard, string(seek.ExpectedChars)), func(f *Frame) {
					f.flags[guard] = seek.AcceptsAt(f.Scanner())
				}),
				If(guard, block, nil),
			}
		}
		if i == 0 {
			r.Body = append(r.Body, block...)
		} else {
			r.Body = append(r.Body, If(r.Success, nil, block))
		}
	}
	return r, nil
}

func (o *oneOf[T]) Seekable() SeekInfo { return o.seek }

func (o *oneOf[T]) String() string {
	names := make([]string, len(o.alts))
	for i, alt := range o.alts {
		names[i] = alt.String()
	}
	return "(" + strings.Join(names, " | ") + ")"
}
