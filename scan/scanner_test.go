package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorTracksLinesAndColumns(t *testing.T) {
	c := NewCursor("ab\ncä\n")
	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, c.Position())

	c.AdvanceN(3)
	assert.Equal(t, Position{Offset: 3, Line: 2, Column: 1}, c.Position())
	assert.Equal(t, 'c', c.Current())

	c.Advance()
	assert.Equal(t, 'ä', c.Current())
	c.Advance()
	assert.Equal(t, Position{Offset: 6, Line: 2, Column: 3}, c.Position())

	c.AdvanceN(5)
	assert.True(t, c.Eof())
	assert.Equal(t, EOF, c.Current())
	assert.Equal(t, 7, c.Offset())
}

func TestCursorResetIsRepeatable(t *testing.T) {
	c := NewCursor("hello world")
	c.AdvanceN(6)
	snap := c.Position()

	for i := 0; i < 3; i++ {
		c.AdvanceN(3)
		c.ResetPosition(snap)
		assert.Equal(t, snap, c.Position())
		assert.Equal(t, 'w', c.Current())
	}
	c.ResetPosition(Start)
	assert.Equal(t, 'h', c.Current())
	assert.Equal(t, "hello world", c.Buffer())
}

func TestScannerReads(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		read   func(*Scanner) bool
		ok     bool
		offset int
	}{
		{"text", "foo=1", func(s *Scanner) bool { return s.ReadText("foo") }, true, 3},
		{"text mismatch", "fob", func(s *Scanner) bool { return s.ReadText("foo") }, false, 0},
		{"text too long", "fo", func(s *Scanner) bool { return s.ReadText("foo") }, false, 0},
		{"char", "=1", func(s *Scanner) bool { return s.ReadChar('=') }, true, 1},
		{"char at eof", "", func(s *Scanner) bool { return s.ReadChar('=') }, false, 0},
		{"whitespace", " \t\nx", func(s *Scanner) bool { return s.SkipWhiteSpace() }, true, 3},
		{"no whitespace", "x", func(s *Scanner) bool { return s.SkipWhiteSpace() }, false, 0},
		{"range", "b", func(s *Scanner) bool { _, ok := s.ReadRange('a', 'z'); return ok }, true, 1},
		{"range miss", "B", func(s *Scanner) bool { _, ok := s.ReadRange('a', 'z'); return ok }, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(tt.input)
			assert.Equal(t, tt.ok, tt.read(s))
			assert.Equal(t, tt.offset, s.Cursor.Offset())
		})
	}
}

func TestScannerReadInteger(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"42", "42", true},
		{"42abc", "42", true},
		{"-7", "-7", true},
		{"-", "", false},
		{"-x", "", false},
		{"x", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := NewScanner(tt.input)
			got, ok := s.ReadInteger()
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), s.Cursor.Offset())
		})
	}
}

func TestReadTextAcrossLines(t *testing.T) {
	s := NewScanner("a\nbc")
	require.True(t, s.ReadText("a\nb"))
	assert.Equal(t, Position{Offset: 3, Line: 2, Column: 2}, s.Cursor.Position())
}

func TestLocate(t *testing.T) {
	input := "ab\ncd"
	assert.Equal(t, Start, Locate(input, 0))
	assert.Equal(t, Position{Offset: 3, Line: 2, Column: 1}, Locate(input, 3))
	assert.Equal(t, Position{Offset: 5, Line: 2, Column: 3}, Locate(input, 99))
}
