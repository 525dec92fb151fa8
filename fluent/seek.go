package fluent

import (
	"slices"

	"github.com/dhamidi/combi/scan"
)

// SeekInfo tells a caller, without consuming input, which characters a node
// can start with. The facts are advisory: a rejected character guarantees that
// the node fails, an accepted one guarantees nothing.
//
// The zero value means the node cannot seek.
type SeekInfo struct {
	CanSeek bool

	// ExpectedChars is sorted and free of duplicates. It is shared between
	// nodes and must not be modified.
	ExpectedChars []rune

	// SkipWhitespace means the node skips whitespace before its first
	// character, so callers must skip it too before checking.
	SkipWhitespace bool
}

// Seeking builds the seek facts of a node starting with one of chars.
// Without chars the node cannot seek.
func Seeking(skipWhitespace bool, chars ...rune) SeekInfo {
	if len(chars) == 0 {
		return SeekInfo{}
	}
	set := slices.Clone(chars)
	slices.Sort(set)
	return SeekInfo{
		CanSeek:        true,
		ExpectedChars:  slices.Compact(set),
		SkipWhitespace: skipWhitespace,
	}
}

// Accepts reports whether r can start a match. A node that cannot seek
// accepts everything.
func (s SeekInfo) Accepts(r rune) bool {
	if !s.CanSeek {
		return true
	}
	_, found := slices.BinarySearch(s.ExpectedChars, r)
	return found
}

// AcceptsAt checks the next character of the scanner, skipping whitespace
// first when the facts require it. The cursor is left unchanged.
func (s SeekInfo) AcceptsAt(sc *scan.Scanner) bool {
	next := lookahead{scanner: sc}
	return next.accepts(s)
}

// lookahead peeks at the next character once per form: raw or after
// whitespace.
type lookahead struct {
	scanner *scan.Scanner
	trimmed rune
	known   bool
}

func (l *lookahead) accepts(s SeekInfo) bool {
	if !s.CanSeek {
		return true
	}
	if !s.SkipWhitespace {
		return s.Accepts(l.scanner.Cursor.Current())
	}
	if !l.known {
		start := l.scanner.Cursor.Position()
		l.scanner.SkipWhiteSpace()
		l.trimmed = l.scanner.Cursor.Current()
		l.scanner.Cursor.ResetPosition(start)
		l.known = true
	}
	return s.Accepts(l.trimmed)
}

func (s SeekInfo) withSkipWhitespace() SeekInfo {
	if !s.CanSeek {
		return s
	}
	s.SkipWhitespace = true
	return s
}

// unionSeek merges the facts of alternatives. The union can only seek when
// every alternative can and they agree on whitespace.
func unionSeek(infos ...SeekInfo) SeekInfo {
	if len(infos) == 0 {
		return SeekInfo{}
	}
	var chars []rune
	for _, info := range infos {
		if !info.CanSeek || info.SkipWhitespace != infos[0].SkipWhitespace {
			return SeekInfo{}
		}
		chars = append(chars, info.ExpectedChars...)
	}
	return Seeking(infos[0].SkipWhitespace, chars...)
}
