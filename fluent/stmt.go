package fluent

import (
	"fmt"
	"strings"
)

// Stmt is one operation of a routine.
type Stmt interface {
	exec(f *Frame)
	format(w *writer)
}

func execute(f *Frame, body []Stmt) {
	for _, s := range body {
		s.exec(f)
	}
}

type savePosition struct{ v PosVar }

// SavePosition snapshots the cursor into v.
func SavePosition(v PosVar) Stmt { return savePosition{v} }

func (s savePosition) exec(f *Frame)    { f.positions[s.v] = f.Context.Scanner.Cursor.Position() }
func (s savePosition) format(w *writer) { w.line("%s = position()", s.v) }

type resetPosition struct{ v PosVar }

// ResetPosition restores the cursor from v.
func ResetPosition(v PosVar) Stmt { return resetPosition{v} }

func (s resetPosition) exec(f *Frame)    { f.Context.Scanner.Cursor.ResetPosition(f.positions[s.v]) }
func (s resetPosition) format(w *writer) { w.line("reset(%s)", s.v) }

type setFlag struct {
	v     FlagVar
	value bool
}

func SetFlag(v FlagVar, value bool) Stmt { return setFlag{v, value} }

func (s setFlag) exec(f *Frame)    { f.flags[s.v] = s.value }
func (s setFlag) format(w *writer) { w.line("%s = %t", s.v, s.value) }

type markOffset struct{ v OffsetVar }

// MarkOffset stores the current cursor offset into v.
func MarkOffset(v OffsetVar) Stmt { return markOffset{v} }

func (s markOffset) exec(f *Frame)    { f.offsets[s.v] = f.Context.Scanner.Cursor.Offset() }
func (s markOffset) format(w *writer) { w.line("%s = offset()", s.v) }

type constant struct {
	v     ValueVar
	value any
}

// Const stores a fixed value into v.
func Const(v ValueVar, value any) Stmt { return constant{v, value} }

func (s constant) exec(f *Frame) {
	if s.v != NoValue {
		f.values[s.v] = s.value
	}
}
func (s constant) format(w *writer) { w.line("%s = %#v", s.v, s.value) }

type ifStmt struct {
	cond FlagVar
	then []Stmt
	els  []Stmt
}

// If runs then when cond is set and els otherwise.
func If(cond FlagVar, then, els []Stmt) Stmt { return &ifStmt{cond, then, els} }

func (s *ifStmt) exec(f *Frame) {
	if f.flags[s.cond] {
		execute(f, s.then)
	} else {
		execute(f, s.els)
	}
}

func (s *ifStmt) format(w *writer) {
	if len(s.then) == 0 {
		w.line("if !%s {", s.cond)
		w.block(s.els)
		w.line("}")
		return
	}
	w.line("if %s {", s.cond)
	w.block(s.then)
	if len(s.els) > 0 {
		w.line("} else {")
		w.block(s.els)
	}
	w.line("}")
}

type execStmt struct {
	label string
	fn    func(*Frame)
}

// Exec runs fn. The label is what the statement shows in listings.
func Exec(label string, fn func(*Frame)) Stmt { return &execStmt{label, fn} }

func (s *execStmt) exec(f *Frame)    { s.fn(f) }
func (s *execStmt) format(w *writer) { w.line("%s", s.label) }

type loopStmt struct {
	body []Stmt
	cond FlagVar
	each []Stmt
}

// Loop runs body until cond is unset after it, running each after every
// successful pass. A pass that consumes nothing ends the loop.
func Loop(body []Stmt, cond FlagVar, each []Stmt) Stmt { return &loopStmt{body, cond, each} }

func (s *loopStmt) exec(f *Frame) {
	cursor := f.Context.Scanner.Cursor
	for {
		before := cursor.Offset()
		execute(f, s.body)
		if !f.flags[s.cond] {
			return
		}
		execute(f, s.each)
		if cursor.Offset() == before {
			return
		}
	}
}

func (s *loopStmt) format(w *writer) {
	w.line("loop {")
	w.block(s.body)
	w.depth++
	w.line("if !%s { break }", s.cond)
	w.depth--
	w.block(s.each)
	w.line("}")
}

type callStmt struct {
	sub     *Subroutine
	success FlagVar
	start   OffsetVar
	value   ValueVar
}

// Call runs a subroutine on a fresh frame and copies its outcome into the
// given slots.
func Call(sub *Subroutine, success FlagVar, start OffsetVar, value ValueVar) Stmt {
	return &callStmt{sub, success, start, value}
}

func (s *callStmt) exec(f *Frame) {
	r := s.sub.routine
	callee := f.prog.acquire(f.Context)
	execute(callee, r.Body)
	ok := callee.flags[r.Success]
	f.flags[s.success] = ok
	if ok {
		f.offsets[s.start] = callee.offsets[r.Start]
		if s.value != NoValue && r.Value != NoValue {
			f.values[s.value] = callee.values[r.Value]
		}
	}
	f.prog.release(callee)
}

func (s *callStmt) format(w *writer) {
	w.line("%s, %s, %s = call %s", s.success, s.start, s.value, s.sub.Name)
}

// Walk visits every statement of body, nested ones included, in order.
func Walk(body []Stmt, visit func(Stmt)) {
	for _, s := range body {
		visit(s)
		switch s := s.(type) {
		case *ifStmt:
			Walk(s.then, visit)
			Walk(s.els, visit)
		case *loopStmt:
			Walk(s.body, visit)
			Walk(s.each, visit)
		}
	}
}

// Stats summarises the size of a routine.
type Stats struct {
	Statements int
	Guards     int // if statements
	Calls      int
	Locals     [localKinds]int
}

func (s Stats) Positions() int { return s.Locals[PositionLocal] }

func (r *Routine) Stats() Stats {
	var st Stats
	Walk(r.Body, func(s Stmt) {
		st.Statements++
		switch s.(type) {
		case *ifStmt:
			st.Guards++
		case *callStmt:
			st.Calls++
		}
	})
	for _, l := range r.Locals {
		st.Locals[l.Kind]++
	}
	return st
}

// String renders the routine as pseudo-code.
func (r *Routine) String() string {
	w := &writer{}
	w.line("routine %s {", r.Name)
	w.depth++
	for _, l := range r.Locals {
		w.line("var %s %s", l.Name, l.Kind)
	}
	for _, s := range r.Body {
		s.format(w)
	}
	w.line("return %s, %s, %s", r.Success, r.Start, r.Value)
	w.depth--
	w.line("}")
	return w.b.String()
}

type writer struct {
	b     strings.Builder
	depth int
}

func (w *writer) line(format string, args ...any) {
	w.b.WriteString(strings.Repeat("\t", w.depth))
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

func (w *writer) block(body []Stmt) {
	w.depth++
	for _, s := range body {
		s.format(w)
	}
	w.depth--
}
