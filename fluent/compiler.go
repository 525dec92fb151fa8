package fluent

import "fmt"

// LocalKind is the type of a slot declared by a routine.
type LocalKind uint8

const (
	PositionLocal LocalKind = iota // cursor snapshot
	FlagLocal                      // success flag or guard
	OffsetLocal                    // byte offset, used for span starts
	ValueLocal                     // produced value
	localKinds
)

func (k LocalKind) String() string {
	switch k {
	case PositionLocal:
		return "position"
	case FlagLocal:
		return "bool"
	case OffsetLocal:
		return "int"
	case ValueLocal:
		return "any"
	}
	return "invalid"
}

// Slots of a Frame, by kind.
type (
	PosVar    int
	FlagVar   int
	OffsetVar int
	ValueVar  int
)

// NoValue is the value slot of a routine whose result is discarded.
const NoValue ValueVar = -1

const noOffset OffsetVar = -1

func (v PosVar) String() string    { return fmt.Sprintf("start%d", int(v)) }
func (v FlagVar) String() string   { return fmt.Sprintf("success%d", int(v)) }
func (v OffsetVar) String() string { return fmt.Sprintf("offset%d", int(v)) }

func (v ValueVar) String() string {
	if v == NoValue {
		return "_"
	}
	return fmt.Sprintf("value%d", int(v))
}

// Local is a slot declared by a routine.
type Local struct {
	Kind  LocalKind
	Index int
	Name  string
}

// Routine is the compiled form of a node. Running Body on a frame and then
// reading Success, Start and Value behaves like the interpreted Parse of the
// node: on success the span is [Start, cursor offset].
type Routine struct {
	Name    string
	Locals  []Local
	Body    []Stmt
	Success FlagVar
	Start   OffsetVar
	Value   ValueVar
}

// Discards reports whether the routine produces no value.
func (r *Routine) Discards() bool {
	return r.Value == NoValue
}

// adopt appends the locals of children, which then live in r's frame.
func (r *Routine) adopt(children ...*Routine) {
	for _, child := range children {
		r.Locals = append(r.Locals, child.Locals...)
	}
}

// Compiler hands out slots while nodes compile. One Compiler serves one
// compilation and must not be used concurrently.
type Compiler struct {
	discard bool
	counts  [localKinds]int
	shared  map[sharedKey]*Subroutine
	subs    []*Subroutine
}

type CompileOption func(*Compiler)

// WithDiscard compiles the root for recognition only: no value is produced.
func WithDiscard() CompileOption {
	return func(c *Compiler) {
		c.discard = true
	}
}

func NewCompiler(opts ...CompileOption) *Compiler {
	c := &Compiler{shared: make(map[sharedKey]*Subroutine)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Discard reports whether the routine being compiled must not produce a value.
func (c *Compiler) Discard() bool {
	return c.discard
}

// Discarding runs build with discard mode set as given and restores the
// previous mode.
func (c *Compiler) Discarding(discard bool, build func(*Compiler) (*Routine, error)) (*Routine, error) {
	saved := c.discard
	c.discard = discard
	defer func() { c.discard = saved }()
	return build(c)
}

func (c *Compiler) declare(r *Routine, kind LocalKind, name func(int) string) int {
	i := c.counts[kind]
	c.counts[kind]++
	r.Locals = append(r.Locals, Local{Kind: kind, Index: i, Name: name(i)})
	return i
}

func (c *Compiler) DeclarePosition(r *Routine) PosVar {
	return PosVar(c.declare(r, PositionLocal, func(i int) string { return PosVar(i).String() }))
}

func (c *Compiler) DeclareFlag(r *Routine) FlagVar {
	return FlagVar(c.declare(r, FlagLocal, func(i int) string { return FlagVar(i).String() }))
}

func (c *Compiler) DeclareOffset(r *Routine) OffsetVar {
	return OffsetVar(c.declare(r, OffsetLocal, func(i int) string { return OffsetVar(i).String() }))
}

func (c *Compiler) DeclareValue(r *Routine) ValueVar {
	return ValueVar(c.declare(r, ValueLocal, func(i int) string { return ValueVar(i).String() }))
}

// NewRoutine starts the routine of a node. It declares the success flag,
// initialised to success, and a value slot unless the compiler discards.
// The caller sets Start.
func (c *Compiler) NewRoutine(name string, success bool) *Routine {
	r := &Routine{Name: name, Start: noOffset, Value: NoValue}
	r.Success = c.DeclareFlag(r)
	if !c.discard {
		r.Value = c.DeclareValue(r)
	}
	r.Body = append(r.Body, SetFlag(r.Success, success))
	return r
}

// wrap starts a routine that reports the slots of inner as its own. The
// caller adds inner's body.
func wrap(name string, inner *Routine) *Routine {
	r := &Routine{
		Name:    name,
		Success: inner.Success,
		Start:   inner.Start,
		Value:   inner.Value,
	}
	r.adopt(inner)
	return r
}

// Subroutine is a routine shared by several call sites. It runs on a frame of
// its own, which makes recursion possible.
type Subroutine struct {
	Name    string
	routine *Routine
}

// Routine returns the compiled body; nil while it is still being compiled.
func (s *Subroutine) Routine() *Routine {
	return s.routine
}

type sharedKey struct {
	node    any
	discard bool
}

// Shared compiles build once per key and discard mode. A key requested again
// while its routine is being compiled returns the pending subroutine, so
// recursive references terminate.
func (c *Compiler) Shared(key any, name string, build func(*Compiler) (*Routine, error)) (*Subroutine, error) {
	k := sharedKey{node: key, discard: c.discard}
	if s, ok := c.shared[k]; ok {
		return s, nil
	}
	s := &Subroutine{Name: name}
	c.shared[k] = s
	r, err := build(c)
	if err != nil {
		delete(c.shared, k)
		return nil, err
	}
	s.routine = r
	c.subs = append(c.subs, s)
	return s, nil
}

// Subroutines returns the shared routines compiled so far.
func (c *Compiler) Subroutines() []*Subroutine {
	return c.subs
}

// CompileInterpreted compiles p as one statement running its interpreted Parse.
func CompileInterpreted[T any](c *Compiler, p Parser[T]) (*Routine, error) {
	r := c.NewRoutine(p.String(), false)
	r.Start = c.DeclareOffset(r)
	success, start, value := r.Success, r.Start, r.Value
	r.Body = append(r.Body, Exec(fmt.Sprintf("%s, %s, %s = parse(%s)", success, start, value, p), func(f *Frame) {
		var res Result[T]
		if p.Parse(f.Context, &res) {
			f.SetFlag(success, true)
			f.SetOffset(start, res.Start)
			Store(f, value, res.Value)
		}
	}))
	return r, nil
}
