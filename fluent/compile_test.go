package fluent

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileStats[T any](t *testing.T, p Parser[T], opts ...CompileOption) Stats {
	t.Helper()
	c, err := Compile(p, opts...)
	require.NoError(t, err)
	return c.Routine().Stats()
}

func TestNestedSequencesFlattenIntoOneRoutine(t *testing.T) {
	s2 := And(lit("a"), lit("b"))
	s3 := And3(s2, lit("c"))
	s4 := And4(s3, lit("d"))
	s5 := And5(s4, lit("e"))
	s6 := And6(s5, lit("f"))
	s7 := And7(s6, lit("g"))
	s8 := And8(s7, lit("h"))

	stats := []Stats{
		compileStats(t, s2, WithDiscard()),
		compileStats(t, s3, WithDiscard()),
		compileStats(t, s4, WithDiscard()),
		compileStats(t, s5, WithDiscard()),
		compileStats(t, s6, WithDiscard()),
		compileStats(t, s7, WithDiscard()),
		compileStats(t, s8, WithDiscard()),
	}
	for i, st := range stats {
		arity := i + 2
		assert.Equal(t, 1, st.Positions(), "arity %d", arity)
		assert.Equal(t, arity, st.Guards, "arity %d", arity)
		assert.Zero(t, st.Calls)
	}
	growth := stats[1].Statements - stats[0].Statements
	for i := 1; i < len(stats); i++ {
		assert.Equal(t, growth, stats[i].Statements-stats[i-1].Statements, "statements must grow linearly")
	}

	// One guard per child and one per literal value.
	st := compileStats(t, s8)
	assert.Equal(t, 1, st.Positions())
	assert.Equal(t, 16, st.Guards)
}

func TestSkipSequencesFlatten(t *testing.T) {
	p := And3(AndSkip3(And(lit("a"), lit("b")), lit(",")), lit("c"))
	st := compileStats(t, p)
	assert.Equal(t, 1, st.Positions())

	o := run(mustCompile(t, p), "ab,c")
	require.True(t, o.ok)
	assert.Equal(t, Tuple3[string, string, string]{"a", "b", "c"}, o.res.Value)
}

func TestCompiledHeadFlattens(t *testing.T) {
	head := mustCompile(t, And(lit("a"), lit("b")))
	p := And3(head, lit("c"))
	assert.Equal(t, 1, compileStats(t, p).Positions())
}

func TestDiscardModeDeclaresNoValues(t *testing.T) {
	p := And(AndSkip(lit("foo"), lit("=")), Integer())
	st := compileStats(t, p, WithDiscard())
	assert.Zero(t, st.Locals[ValueLocal])

	c, err := Compile(p, WithDiscard())
	require.NoError(t, err)
	assert.True(t, c.Routine().Discards())

	o := run[Tuple2[string, int64]](c, "foo=42")
	require.True(t, o.ok)
	assert.Equal(t, 0, o.res.Start)
	assert.Equal(t, 6, o.res.End)
	assert.Zero(t, o.res.Value)
}

func TestCompileRequiresSequenceHead(t *testing.T) {
	pair := Then(lit("a"), func(s string) Tuple2[string, string] {
		return Tuple2[string, string]{s, s}
	})
	p := And3(pair, lit("c"))

	_, err := Compile(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSequenceRequired))

	o := run(p, "ac")
	require.True(t, o.ok, "interpreted parsing does not need flattening")
	assert.Equal(t, Tuple3[string, string, string]{"a", "a", "c"}, o.res.Value)

	d := NewDeferred[Tuple2[string, string]]("pair")
	d.Set(And(lit("a"), lit("b")))
	var deferred Parser[Tuple2[string, string]] = d
	_, err = Compile(AndSkip3(deferred, lit("c")))
	assert.ErrorIs(t, err, ErrSequenceRequired)
}

func TestRoutineListing(t *testing.T) {
	c, err := Compile(And(lit("a"), lit("b")))
	require.NoError(t, err)

	listing := c.Routine().String()
	assert.True(t, strings.HasPrefix(listing, `routine "a" & "b" {`))
	for _, want := range []string{
		"var start0 position",
		"start0 = position()",
		`success0 = read("a")`,
		"reset(start0)",
		"value2 = tuple(value0, value1)",
		"return success2, offset0, value2",
	} {
		assert.Contains(t, listing, want)
	}
}

func TestRecursionCompilesToSubroutine(t *testing.T) {
	depth := nestedParens()
	c, err := Compile(depth)
	require.NoError(t, err)
	require.Len(t, c.Subroutines(), 1)
	assert.Equal(t, 1, c.Routine().Stats().Calls)
	assert.Contains(t, c.Listing(), "call parens")

	o := run[int](c, "((()))")
	require.True(t, o.ok)
	assert.Equal(t, 3, o.res.Value)
	assert.Equal(t, 6, o.res.End)
}

func TestSharedRoutinesAreCompiledOnce(t *testing.T) {
	d := NewDeferred[string]("word")
	d.Set(lit("w"))
	var word Parser[string] = d

	c, err := Compile(And(word, word))
	require.NoError(t, err)
	assert.Len(t, c.Subroutines(), 1)
	assert.Equal(t, 2, c.Routine().Stats().Calls)

	c, err = Compile(And(word, Capture(word)))
	require.NoError(t, err)
	assert.Len(t, c.Subroutines(), 2, "value and discard forms are separate")
}

func TestCompileUnsetDeferred(t *testing.T) {
	var p Parser[string] = NewDeferred[string]("missing")
	_, err := Compile(p)
	assert.ErrorIs(t, err, errDeferredUnset)
	assert.Panics(t, func() { run(p, "x") })
}

func TestDeferredSetTwice(t *testing.T) {
	d := NewDeferred[string]("x")
	d.Set(lit("x"))
	assert.Panics(t, func() { d.Set(lit("y")) })
}

func TestCompileInterpreted(t *testing.T) {
	inner := newProbe(lit("q"))
	c, err := Compile(And(lit("p"), Parser[string](inner)))
	require.NoError(t, err)

	o := run[Tuple2[string, string]](c, "pq")
	require.True(t, o.ok)
	assert.Equal(t, Tuple2[string, string]{"p", "q"}, o.res.Value)
	assert.Equal(t, 1, inner.calls)
}

// nestedParens counts the depth of balanced parentheses.
func nestedParens() Parser[int] {
	return Recursive("parens", func(self Parser[int]) Parser[int] {
		return OneOf(
			Then(And3(And(lit("("), self), lit(")")), func(t Tuple3[string, int, string]) int {
				return t.B + 1
			}),
			Always(0),
		)
	})
}

func TestTupleHeadIsUnpacked(t *testing.T) {
	ab := And(lit("a"), lit("b"))

	wrapped := And3(SkipAnd(lit("("), ab), lit(")"))
	o := run(mustCompile(t, wrapped), "(ab)")
	require.True(t, o.ok)
	assert.Equal(t, Tuple3[string, string, string]{"a", "b", ")"}, o.res.Value)

	trailing := And3(AndSkip(ab, lit(";")), lit("c"))
	o = run(mustCompile(t, trailing), "ab;c")
	require.True(t, o.ok)
	assert.Equal(t, Tuple3[string, string, string]{"a", "b", "c"}, o.res.Value)
	assert.Equal(t, 4, o.res.End)

	o = run(mustCompile(t, trailing), "ab;x")
	assert.False(t, o.ok)
	assert.Equal(t, 0, o.cursor)
}

func TestLoadRejectsMismatchedSlot(t *testing.T) {
	f := &Frame{values: []any{"text", nil}}
	assert.Equal(t, "text", Load[string](f, 0))
	assert.Equal(t, 0, Load[int](f, 1), "empty slots read as zero")
	assert.Equal(t, 0, Load[int](f, NoValue))
	assert.Panics(t, func() { Load[int](f, 0) })
}
