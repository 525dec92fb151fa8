package fluent

import (
	"testing"

	"github.com/dhamidi/combi/scan"
	"github.com/stretchr/testify/assert"
)

func TestSeekFacts(t *testing.T) {
	tests := []struct {
		name    string
		seek    SeekInfo
		canSeek bool
		chars   string
		skipWS  bool
	}{
		{"literal", Literal("foo").Seekable(), true, "f", false},
		{"empty literal", Literal("").Seekable(), false, "", false},
		{"char", Char('x').Seekable(), true, "x", false},
		{"range", CharRange('a', 'e').Seekable(), true, "abcde", false},
		{"wide range", CharRange(0, 0x10FFFF).Seekable(), false, "", false},
		{"integer", Integer().Seekable(), true, "-0123456789", false},
		{"sequence uses first child", And(OneOf(lit("b"), lit("a")), Integer()).Seekable(), true, "ab", false},
		{"sequence with empty first child", And(Always(""), lit("x")).Seekable(), false, "", false},
		{"skip sequence", SkipAnd(lit("("), lit("a")).Seekable(), true, "(", false},
		{"longer sequence", And3(And(lit("k"), lit("v")), lit(";")).Seekable(), true, "k", false},
		{"whitespace", SkipWhiteSpace(lit("a")).Seekable(), true, "a", true},
		{"mixed whitespace union", OneOf(lit("a"), SkipWhiteSpace(lit("b"))).Seekable(), false, "", false},
		{"union", OneOf(lit("b"), lit("a"), lit("b")).Seekable(), true, "ab", false},
		{"always", Always(1).Seekable(), false, "", false},
		{"optional", Optional(lit("a"), "").Seekable(), false, "", false},
		{"many", ZeroOrMany(lit("a")).Seekable(), false, "", false},
		{"then", Then(lit("a"), func(s string) int { return len(s) }).Seekable(), true, "a", false},
		{"capture", Capture(lit("a")).Seekable(), true, "a", false},
		{"deferred", NewDeferred[string]("d").Seekable(), false, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canSeek, tt.seek.CanSeek)
			if tt.canSeek {
				assert.Equal(t, []rune(tt.chars), tt.seek.ExpectedChars)
			} else {
				assert.Empty(t, tt.seek.ExpectedChars)
			}
			assert.Equal(t, tt.skipWS, tt.seek.SkipWhitespace)
		})
	}
}

func TestSeekAccepts(t *testing.T) {
	s := Seeking(false, 'c', 'a', 'b', 'a')
	assert.Equal(t, []rune("abc"), s.ExpectedChars)
	assert.True(t, s.Accepts('b'))
	assert.False(t, s.Accepts('d'))
	assert.False(t, s.Accepts(scan.EOF))
	assert.True(t, SeekInfo{}.Accepts('z'), "a node that cannot seek accepts everything")
}

func TestSeekAcceptsAtLeavesCursor(t *testing.T) {
	sc := scan.NewScanner("  \n b")
	assert.True(t, Seeking(true, 'b').AcceptsAt(sc))
	assert.False(t, Seeking(false, 'b').AcceptsAt(sc))
	assert.Equal(t, 0, sc.Cursor.Offset())
}

func TestOneOfSkipsRejectedAlternatives(t *testing.T) {
	a := newProbe(lit("a"))
	b := newProbe(lit("b"))
	p := OneOf[string](a, b)

	for _, q := range []Parser[string]{p, mustCompile(t, p)} {
		a.calls, b.calls = 0, 0
		o := run(q, "b")
		assert.True(t, o.ok)
		assert.Equal(t, "b", o.res.Value)
		assert.Equal(t, 0, a.calls)
		assert.Equal(t, 1, b.calls)

		a.calls, b.calls = 0, 0
		o = run(q, "c")
		assert.False(t, o.ok)
		assert.Equal(t, 0, a.calls+b.calls)
	}
}

func TestOneOfTriesAlternativesThatCannotSeek(t *testing.T) {
	opaque := newProbe(Then(Optional(lit("x"), ""), func(s string) string { return "opaque" + s }))
	p := OneOf[string](lit("a"), opaque)

	o := run(p, "z")
	assert.True(t, o.ok)
	assert.Equal(t, "opaque", o.res.Value)
	assert.Equal(t, 1, opaque.calls)
}
