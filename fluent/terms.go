package fluent

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

type literal struct {
	text string
	seek SeekInfo
}

// Literal matches text exactly.
func Literal(text string) Parser[string] {
	l := &literal{text: text}
	if r, size := utf8.DecodeRuneInString(text); size > 0 {
		l.seek = Seeking(false, r)
	}
	return l
}

func (l *literal) Parse(ctx *Context, res *Result[string]) bool {
	ctx.EnterParser(l)
	start := ctx.Scanner.Cursor.Offset()
	if ctx.Scanner.ReadText(l.text) {
		res.Set(start, ctx.Scanner.Cursor.Offset(), l.text)
		ctx.ExitParser(l, true)
		return true
	}
	ctx.ExitParser(l, false)
	return false
}

func (l *literal) Compile(c *Compiler) (*Routine, error) {
	r := c.NewRoutine(l.String(), false)
	r.Start = c.DeclareOffset(r)
	success, start, value, text := r.Success, r.Start, r.Value, l.text
	r.Body = append(r.Body,
		MarkOffset(start),
		Exec(fmt.Sprintf("%s = read(%q)", success, text), func(f *Frame) {
			f.SetFlag(success, f.Scanner().ReadText(text))
		}),
	)
	if value != NoValue {
		r.Body = append(r.Body, If(success, []Stmt{Const(value, text)}, nil))
	}
	return r, nil
}

func (l *literal) Seekable() SeekInfo { return l.seek }
func (l *literal) String() string     { return strconv.Quote(l.text) }

type charRange struct {
	lo, hi rune
	seek   SeekInfo
}

// maxSeekRange bounds the number of characters a range enumerates in its seek
// facts.
const maxSeekRange = 256

// CharRange matches one character between lo and hi inclusive.
func CharRange(lo, hi rune) Parser[rune] {
	if lo > hi {
		panic(fmt.Sprintf("fluent.CharRange: empty range %q..%q", lo, hi))
	}
	cr := &charRange{lo: lo, hi: hi}
	if width := int64(hi) - int64(lo); width < maxSeekRange {
		chars := make([]rune, 0, width+1)
		for i := int64(0); i <= width; i++ {
			chars = append(chars, lo+rune(i))
		}
		cr.seek = Seeking(false, chars...)
	}
	return cr
}

// Char matches r.
func Char(r rune) Parser[rune] {
	return CharRange(r, r)
}

func (cr *charRange) Parse(ctx *Context, res *Result[rune]) bool {
	ctx.EnterParser(cr)
	start := ctx.Scanner.Cursor.Offset()
	if r, ok := ctx.Scanner.ReadRange(cr.lo, cr.hi); ok {
		res.Set(start, ctx.Scanner.Cursor.Offset(), r)
		ctx.ExitParser(cr, true)
		return true
	}
	ctx.ExitParser(cr, false)
	return false
}

func (cr *charRange) Compile(c *Compiler) (*Routine, error) {
	r := c.NewRoutine(cr.String(), false)
	r.Start = c.DeclareOffset(r)
	success, start, value, lo, hi := r.Success, r.Start, r.Value, cr.lo, cr.hi
	r.Body = append(r.Body,
		MarkOffset(start),
		Exec(fmt.Sprintf("%s, %s = range(%q, %q)", success, value, lo, hi), func(f *Frame) {
			ch, ok := f.Scanner().ReadRange(lo, hi)
			f.SetFlag(success, ok)
			if ok {
				Store(f, value, ch)
			}
		}),
	)
	return r, nil
}

func (cr *charRange) Seekable() SeekInfo { return cr.seek }

func (cr *charRange) String() string {
	if cr.lo == cr.hi {
		return strconv.QuoteRune(cr.lo)
	}
	return fmt.Sprintf("%q..%q", cr.lo, cr.hi)
}

type integer struct{}

var integerSeek = Seeking(false, '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9')

// Integer matches an optionally negative decimal integer that fits in an
// int64.
func Integer() Parser[int64] {
	return integer{}
}

// readInteger consumes an integer and converts it, leaving the cursor
// untouched when the digits overflow.
func readInteger(ctx *Context) (int64, bool) {
	start := ctx.Scanner.Cursor.Position()
	text, ok := ctx.Scanner.ReadInteger()
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		ctx.Scanner.Cursor.ResetPosition(start)
		return 0, false
	}
	return n, true
}

func (i integer) Parse(ctx *Context, res *Result[int64]) bool {
	ctx.EnterParser(i)
	start := ctx.Scanner.Cursor.Offset()
	if n, ok := readInteger(ctx); ok {
		res.Set(start, ctx.Scanner.Cursor.Offset(), n)
		ctx.ExitParser(i, true)
		return true
	}
	ctx.ExitParser(i, false)
	return false
}

func (i integer) Compile(c *Compiler) (*Routine, error) {
	r := c.NewRoutine(i.String(), false)
	r.Start = c.DeclareOffset(r)
	success, start, value := r.Success, r.Start, r.Value
	r.Body = append(r.Body,
		MarkOffset(start),
		Exec(fmt.Sprintf("%s, %s = integer()", success, value), func(f *Frame) {
			n, ok := readInteger(f.Context)
			f.SetFlag(success, ok)
			if ok {
				Store(f, value, n)
			}
		}),
	)
	return r, nil
}

func (integer) Seekable() SeekInfo { return integerSeek }
func (integer) String() string     { return "integer" }
