// Package fluent provides typed parser combinators that run either by walking
// the combinator tree or as a routine compiled once from that tree.
//
// # Nodes
//
// A grammar is a tree of Parser values built bottom-up:
//
//	assign := fluent.And(fluent.AndSkip(fluent.Literal("foo"), fluent.Literal("=")), fluent.Integer())
//	v, err := fluent.Parse(assign, "foo=42") // Tuple2{A: "foo", B: 42}
//
// Nodes are immutable once built and may be shared by several parents and used
// by concurrent parses, each with its own Context.
//
// # Backtracking
//
// Parse either succeeds, leaving the cursor after the consumed input, or fails
// and leaves the cursor where it was on entry. Sequences restore the position
// recorded at their own entry no matter how many children had succeeded.
//
// # Compilation
//
// Compile translates a tree into a Routine: a flat list of statements over the
// slots of a Frame. Nested sequences collapse into a single routine with one
// position snapshot. The resulting Compiled parser behaves exactly like the tree
// it was built from and is itself a Parser.
package fluent

import (
	"fmt"

	"github.com/dhamidi/combi/scan"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("combi.fluent")

// Parser is the unit of composition.
//
// Parse runs the node against ctx. On success it fills res, leaves the cursor
// at res.End and returns true. On failure it returns false with the cursor
// unchanged; res must not be read.
//
// Compile returns the node's routine. Nodes without a specialised form can
// return CompileInterpreted(c, self).
//
// Seekable returns the node's seek facts; the zero SeekInfo means the node
// cannot seek.
type Parser[T any] interface {
	Parse(ctx *Context, res *Result[T]) bool
	Compile(c *Compiler) (*Routine, error)
	Seekable() SeekInfo
	fmt.Stringer
}

// Result records what a successful parse consumed and produced.
type Result[T any] struct {
	Start int
	End   int
	Value T
}

func (r *Result[T]) Set(start, end int, value T) {
	r.Start = start
	r.End = end
	r.Value = value
}

// ParseError is returned by Parse when the root parser does not match.
type ParseError struct {
	Parser   string
	Filename string
	Position scan.Position
}

func (e *ParseError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s:%s: no match for %s", e.Filename, e.Position, e.Parser)
	}
	return fmt.Sprintf("%s: no match for %s", e.Position, e.Parser)
}

// TryParse runs p over input.
func TryParse[T any](p Parser[T], input string, opts ...Option) (Result[T], bool) {
	ctx := NewContext(input, opts...)
	var res Result[T]
	ok := p.Parse(ctx, &res)
	return res, ok
}

// Parse runs p over input and returns its value. Trailing input is not an
// error.
func Parse[T any](p Parser[T], input string, opts ...Option) (T, error) {
	ctx := NewContext(input, opts...)
	var res Result[T]
	if !p.Parse(ctx, &res) {
		var zero T
		return zero, &ParseError{
			Parser:   p.String(),
			Filename: ctx.Scanner.Filename,
			Position: ctx.Scanner.Cursor.Position(),
		}
	}
	return res.Value, nil
}

// mustHave panics when a required child is missing. A nil child is a mistake
// in the grammar, never a parse failure.
func mustHave(combinator string, children ...any) {
	for i, c := range children {
		if c == nil {
			panic(fmt.Sprintf("fluent.%s: child %d is nil", combinator, i+1))
		}
	}
}
