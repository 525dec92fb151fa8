// Package scan provides the input cursor and the character-level reads that
// parser combinators are built on.
package scan

import (
	"fmt"
	"unicode/utf8"
)

// EOF is returned by Current once the cursor is past the last character.
const EOF rune = -1

// Position represents a location in the input.
type Position struct {
	Offset int // byte offset from the start of the input
	Line   int // 1-based line number
	Column int // 1-based column, in runes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Start is the position of the first character of any input.
var Start = Position{Offset: 0, Line: 1, Column: 1}

// Cursor is a read position over an immutable buffer.
// Snapshots taken with Position can be restored with ResetPosition any number
// of times; restoring never touches the buffer.
type Cursor struct {
	buffer  string
	pos     Position
	current rune
	width   int
}

func NewCursor(buffer string) *Cursor {
	c := &Cursor{buffer: buffer}
	c.ResetPosition(Start)
	return c
}

// Position returns a snapshot of the cursor.
func (c *Cursor) Position() Position {
	return c.pos
}

// ResetPosition moves the cursor back (or forward) to a snapshot.
func (c *Cursor) ResetPosition(p Position) {
	c.pos = p
	c.decode()
}

func (c *Cursor) decode() {
	if c.pos.Offset >= len(c.buffer) {
		c.current, c.width = EOF, 0
		return
	}
	b := c.buffer[c.pos.Offset]
	if b < utf8.RuneSelf {
		c.current, c.width = rune(b), 1
		return
	}
	c.current, c.width = utf8.DecodeRuneInString(c.buffer[c.pos.Offset:])
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.pos.Offset
}

// Current returns the character under the cursor, or EOF.
func (c *Cursor) Current() rune {
	return c.current
}

// Eof reports whether the whole buffer has been consumed.
func (c *Cursor) Eof() bool {
	return c.current == EOF
}

// Advance moves past the current character, tracking lines and columns.
func (c *Cursor) Advance() {
	if c.current == EOF {
		return
	}
	if c.current == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	c.pos.Offset += c.width
	c.decode()
}

// AdvanceN advances over n characters.
func (c *Cursor) AdvanceN(n int) {
	for i := 0; i < n; i++ {
		c.Advance()
	}
}

// Match reports whether the buffer continues with s at the cursor.
// It does not move the cursor.
func (c *Cursor) Match(s string) bool {
	end := c.pos.Offset + len(s)
	return end <= len(c.buffer) && c.buffer[c.pos.Offset:end] == s
}

// Slice returns the buffer between two offsets.
func (c *Cursor) Slice(start, end int) string {
	return c.buffer[start:end]
}

// Buffer returns the whole input.
func (c *Cursor) Buffer() string {
	return c.buffer
}

// Locate returns the position of a byte offset in buffer. Offsets past the end
// locate the end.
func Locate(buffer string, offset int) Position {
	c := NewCursor(buffer)
	for c.Offset() < offset && !c.Eof() {
		c.Advance()
	}
	return c.Position()
}
