package fluent

import "fmt"

type skipWhiteSpace[T any] struct {
	p    Parser[T]
	seek SeekInfo
}

// SkipWhiteSpace skips whitespace before p. When p fails the whitespace is
// given back too.
func SkipWhiteSpace[T any](p Parser[T]) Parser[T] {
	mustHave("SkipWhiteSpace", p)
	return &skipWhiteSpace[T]{p: p, seek: p.Seekable().withSkipWhitespace()}
}

func (s *skipWhiteSpace[T]) Parse(ctx *Context, res *Result[T]) bool {
	ctx.EnterParser(s)
	start := ctx.Scanner.Cursor.Position()
	ctx.Scanner.SkipWhiteSpace()
	if s.p.Parse(ctx, res) {
		ctx.ExitParser(s, true)
		return true
	}
	ctx.Scanner.Cursor.ResetPosition(start)
	ctx.ExitParser(s, false)
	return false
}

func (s *skipWhiteSpace[T]) Compile(c *Compiler) (*Routine, error) {
	inner, err := s.p.Compile(c)
	if err != nil {
		return nil, err
	}
	r := wrap(s.String(), inner)
	start := c.DeclarePosition(r)
	r.Body = append(r.Body,
		SavePosition(start),
		Exec("skip_whitespace()", func(f *Frame) { f.Scanner().SkipWhiteSpace() }),
	)
	r.Body = append(r.Body, inner.Body...)
	r.Body = append(r.Body, If(inner.Success, nil, []Stmt{ResetPosition(start)}))
	return r, nil
}

func (s *skipWhiteSpace[T]) Seekable() SeekInfo { return s.seek }
func (s *skipWhiteSpace[T]) String() string     { return fmt.Sprintf("ws(%s)", s.p) }
