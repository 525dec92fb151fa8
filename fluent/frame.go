package fluent

import (
	"fmt"
	"sync"

	"github.com/dhamidi/combi/scan"
)

// Frame holds the locals of one routine execution.
type Frame struct {
	Context *Context

	prog      *program
	positions []scan.Position
	flags     []bool
	offsets   []int
	values    []any
}

func (f *Frame) Scanner() *scan.Scanner          { return f.Context.Scanner }
func (f *Frame) Flag(v FlagVar) bool             { return f.flags[v] }
func (f *Frame) SetFlag(v FlagVar, value bool)   { f.flags[v] = value }
func (f *Frame) Offset(v OffsetVar) int          { return f.offsets[v] }
func (f *Frame) SetOffset(v OffsetVar, o int)    { f.offsets[v] = o }
func (f *Frame) Position(v PosVar) scan.Position { return f.positions[v] }

// Load reads a value slot. NoValue and empty slots read as the zero T; a slot
// holding another type is a compiler bug and panics.
func Load[T any](f *Frame, v ValueVar) T {
	var zero T
	if v == NoValue || f.values[v] == nil {
		return zero
	}
	x, ok := f.values[v].(T)
	if !ok {
		panic(fmt.Sprintf("fluent: %s holds %T, not %T", v, f.values[v], zero))
	}
	return x
}

// Store writes a value slot; storing into NoValue does nothing.
func Store[T any](f *Frame, v ValueVar, x T) {
	if v == NoValue {
		return
	}
	f.values[v] = x
}

// program sizes and recycles the frames of one compilation.
type program struct {
	counts [localKinds]int
	pool   sync.Pool
}

func newProgram(counts [localKinds]int) *program {
	p := &program{counts: counts}
	p.pool.New = func() any {
		return &Frame{
			prog:      p,
			positions: make([]scan.Position, counts[PositionLocal]),
			flags:     make([]bool, counts[FlagLocal]),
			offsets:   make([]int, counts[OffsetLocal]),
			values:    make([]any, counts[ValueLocal]),
		}
	}
	return p
}

func (p *program) acquire(ctx *Context) *Frame {
	f := p.pool.Get().(*Frame)
	f.Context = ctx
	return f
}

func (p *program) release(f *Frame) {
	f.Context = nil
	clear(f.flags)
	clear(f.values)
	p.pool.Put(f)
}
