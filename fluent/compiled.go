package fluent

import (
	"errors"
	"fmt"
	"strings"
)

// Compiled runs the routine compiled from a parser. It is a Parser itself and
// safe for concurrent use.
type Compiled[T any] struct {
	source  Parser[T]
	routine *Routine
	subs    []*Subroutine
	prog    *program
}

// Compile translates p into a routine once.
func Compile[T any](p Parser[T], opts ...CompileOption) (*Compiled[T], error) {
	mustHave("Compile", p)
	c := NewCompiler(opts...)
	r, err := p.Compile(c)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", p, err)
	}
	if err := checkRoutine(r); err != nil {
		return nil, fmt.Errorf("compile %s: %w", p, err)
	}
	for _, s := range c.Subroutines() {
		if err := checkRoutine(s.routine); err != nil {
			return nil, fmt.Errorf("compile %s: subroutine %s: %w", p, s.Name, err)
		}
	}
	st := r.Stats()
	log.Debugf("compiled %s: %d statements, %d guards, %d subroutines, frame %v",
		p, st.Statements, st.Guards, len(c.Subroutines()), c.counts)
	return &Compiled[T]{
		source:  p,
		routine: r,
		subs:    c.Subroutines(),
		prog:    newProgram(c.counts),
	}, nil
}

var errNoStart = errors.New("routine does not set its start offset")

func checkRoutine(r *Routine) error {
	if r.Start == noOffset {
		return fmt.Errorf("%s: %w", r.Name, errNoStart)
	}
	return nil
}

func (c *Compiled[T]) Parse(ctx *Context, res *Result[T]) bool {
	ctx.EnterParser(c)
	f := c.prog.acquire(ctx)
	execute(f, c.routine.Body)
	ok := f.flags[c.routine.Success]
	if ok {
		res.Set(f.offsets[c.routine.Start], ctx.Scanner.Cursor.Offset(), Load[T](f, c.routine.Value))
	}
	c.prog.release(f)
	ctx.ExitParser(c, ok)
	return ok
}

// Compile returns the source's routine, so a Compiled parser can be embedded
// in a larger grammar and compiled again.
func (c *Compiled[T]) Compile(comp *Compiler) (*Routine, error) {
	return c.source.Compile(comp)
}

// skippables lets a compiled sequence head an enclosing sequence.
func (c *Compiled[T]) skippables(comp *Compiler) ([]Skippable, error) {
	seq, ok := c.source.(skippableSequence)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSequenceRequired, c.source)
	}
	return seq.skippables(comp)
}

func (c *Compiled[T]) Seekable() SeekInfo { return c.source.Seekable() }

func (c *Compiled[T]) String() string { return c.source.String() }

// Routine returns the root routine.
func (c *Compiled[T]) Routine() *Routine { return c.routine }

// Subroutines returns the shared routines the root calls.
func (c *Compiled[T]) Subroutines() []*Subroutine { return c.subs }

// Listing renders the root routine and its subroutines.
func (c *Compiled[T]) Listing() string {
	var b strings.Builder
	b.WriteString(c.routine.String())
	for _, s := range c.subs {
		b.WriteString("\n")
		b.WriteString(s.routine.String())
	}
	return b.String()
}
