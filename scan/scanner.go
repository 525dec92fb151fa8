package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner reads lexical elements from a Cursor. Every Read method either
// consumes exactly the element it reports or leaves the cursor untouched.
type Scanner struct {
	Cursor   *Cursor
	Filename string
}

func NewScanner(input string) *Scanner {
	return &Scanner{Cursor: NewCursor(input)}
}

// IsWhiteSpace reports whether r is skipped by SkipWhiteSpace.
func IsWhiteSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return r > utf8.RuneSelf && unicode.IsSpace(r)
}

// SkipWhiteSpace consumes whitespace and reports whether any was found.
func (s *Scanner) SkipWhiteSpace() bool {
	start := s.Cursor.Offset()
	for IsWhiteSpace(s.Cursor.Current()) {
		s.Cursor.Advance()
	}
	return s.Cursor.Offset() > start
}

// ReadText consumes text if the input continues with it.
func (s *Scanner) ReadText(text string) bool {
	if !s.Cursor.Match(text) {
		return false
	}
	if !strings.ContainsRune(text, '\n') && isASCII(text) {
		// Fast path: columns advance by bytes.
		p := s.Cursor.Position()
		p.Offset += len(text)
		p.Column += len(text)
		s.Cursor.ResetPosition(p)
		return true
	}
	s.Cursor.AdvanceN(utf8.RuneCountInString(text))
	return true
}

// ReadChar consumes r if it is the current character.
func (s *Scanner) ReadChar(r rune) bool {
	if s.Cursor.Current() != r || r == EOF {
		return false
	}
	s.Cursor.Advance()
	return true
}

// ReadRange consumes one character between lo and hi inclusive.
func (s *Scanner) ReadRange(lo, hi rune) (rune, bool) {
	r := s.Cursor.Current()
	if r == EOF || r < lo || r > hi {
		return 0, false
	}
	s.Cursor.Advance()
	return r, true
}

// ReadInteger consumes an optional '-' followed by at least one decimal digit
// and returns the consumed text.
func (s *Scanner) ReadInteger() (string, bool) {
	start := s.Cursor.Position()
	if s.Cursor.Current() == '-' {
		s.Cursor.Advance()
	}
	if !isDigit(s.Cursor.Current()) {
		s.Cursor.ResetPosition(start)
		return "", false
	}
	for isDigit(s.Cursor.Current()) {
		s.Cursor.Advance()
	}
	return s.Cursor.Slice(start.Offset, s.Cursor.Offset()), true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
