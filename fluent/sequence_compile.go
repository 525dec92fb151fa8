package fluent

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSequenceRequired is returned when a sequence is compiled whose leading
// operand does not decompose into a flat list of children.
var ErrSequenceRequired = errors.New("leading operand is not a flattenable sequence")

// Skippable is a compiled sequence child. Skipped children must succeed but
// contribute no value. Values, when set, replaces the routine's value slot
// with one slot per tuple field.
type Skippable struct {
	Routine *Routine
	Skip    bool
	Values  []ValueVar
}

func (s Skippable) values() []ValueVar {
	if s.Skip {
		return nil
	}
	if s.Values != nil {
		return s.Values
	}
	return []ValueVar{s.Routine.Value}
}

func significant(parts []Skippable) int {
	n := 0
	for _, p := range parts {
		n += len(p.values())
	}
	return n
}

// skippableSequence is implemented by sequences whose children can be spliced
// into an enclosing sequence.
type skippableSequence interface {
	skippables(c *Compiler) ([]Skippable, error)
}

type step struct {
	compile func(*Compiler) (*Routine, error)
	skip    bool
}

func keep[T any](p Parser[T]) step { return step{compile: p.Compile} }
func skip[T any](p Parser[T]) step { return step{compile: p.Compile, skip: true} }

// build compiles the child; skipped children never produce a value.
func (s step) build(c *Compiler) (*Routine, error) {
	if s.skip {
		return c.Discarding(true, s.compile)
	}
	return s.compile(c)
}

func compileSteps(c *Compiler, steps ...step) ([]Skippable, error) {
	parts := make([]Skippable, 0, len(steps))
	for _, s := range steps {
		r, err := s.build(c)
		if err != nil {
			return nil, err
		}
		parts = append(parts, Skippable{Routine: r, Skip: s.skip})
	}
	return parts, nil
}

// extendSequence unpacks head, a sequence producing a tuple of arity fields,
// into its children and appends last.
func extendSequence(c *Compiler, head fmt.Stringer, arity int, last step) ([]Skippable, error) {
	seq, ok := head.(skippableSequence)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSequenceRequired, head)
	}
	parts, err := seq.skippables(c)
	if err != nil {
		return nil, err
	}
	if n := significant(parts); !c.Discard() && n != arity {
		// AndSkip(And(a, b), x) produces a Tuple2 from a single child.
		if n != 1 {
			return nil, fmt.Errorf("%w: %s has %d values, want %d", ErrSequenceRequired, head, n, arity)
		}
		parts = []Skippable{spread(c, head.String(), parts, arity)}
	}
	r, err := last.build(c)
	if err != nil {
		return nil, err
	}
	return append(parts, Skippable{Routine: r, Skip: last.skip}), nil
}

// spread merges parts whose one significant value is a whole tuple and
// unpacks that tuple into one slot per field.
func spread(c *Compiler, name string, parts []Skippable, arity int) Skippable {
	r := compileSequence(c, name, parts, func(f *Frame, dst ValueVar, v []ValueVar) {
		f.values[dst] = f.values[v[0]]
	})
	src := r.Value
	fields := make([]ValueVar, arity)
	names := make([]string, arity)
	for i := range fields {
		fields[i] = c.DeclareValue(r)
		names[i] = fields[i].String()
	}
	label := fmt.Sprintf("%s = fields(%s)", strings.Join(names, ", "), src)
	r.Body = append(r.Body, If(r.Success, []Stmt{
		Exec(label, func(f *Frame) {
			t, ok := f.values[src].(tuple)
			if !ok {
				panic(fmt.Sprintf("fluent: %s holds %T, not a tuple", src, f.values[src]))
			}
			for i, x := range t.fields() {
				f.values[fields[i]] = x
			}
		}),
	}, nil))
	return Skippable{Routine: r, Values: fields}
}

// assignFunc stores the aggregate of the significant child values into dst.
type assignFunc func(f *Frame, dst ValueVar, values []ValueVar)

// compileSequence merges the children into one routine:
//
//	start = position()
//	child1...
//	if success1 {
//		child2...
//		if success2 {
//			value = tuple(...)
//			success = true
//		} else {
//			reset(start)
//		}
//	}
func compileSequence(c *Compiler, name string, parts []Skippable, assign assignFunc) *Routine {
	r := c.NewRoutine(name, false)
	start := c.DeclarePosition(r)
	r.Start = parts[0].Routine.Start

	var values []ValueVar
	for _, p := range parts {
		r.adopt(p.Routine)
		values = append(values, p.values()...)
	}

	body := []Stmt{SetFlag(r.Success, true)}
	if !r.Discards() {
		dst := r.Value
		names := make([]string, len(values))
		for i, v := range values {
			names[i] = v.String()
		}
		label := fmt.Sprintf("%s = tuple(%s)", dst, strings.Join(names, ", "))
		body = append([]Stmt{Exec(label, func(f *Frame) { assign(f, dst, values) })}, body...)
	}

	for i := len(parts) - 1; i >= 0; i-- {
		child := parts[i].Routine
		var otherwise []Stmt
		if i > 0 {
			otherwise = []Stmt{ResetPosition(start)}
		}
		next := make([]Stmt, 0, len(child.Body)+1)
		next = append(next, child.Body...)
		body = append(next, If(child.Success, body, otherwise))
	}

	r.Body = append(r.Body, SavePosition(start))
	r.Body = append(r.Body, body...)
	return r
}
