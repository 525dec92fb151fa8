package grammar

import (
	"fmt"
	"io"

	"github.com/dhamidi/combi/fluent"
	"github.com/dhamidi/combi/scan"
	"golang.org/x/exp/ebnf"
)

// Token is a lexical element with its position.
type Token struct {
	Kind     string
	Text     string
	Position scan.Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Text)
}

// Kinds of tokens that do not name a production.
const (
	EOF   = "EOF"
	Error = "ERROR"
)

// Lexicon holds the compiled recognizers of a grammar's lexical productions.
// It is safe for concurrent use.
type Lexicon struct {
	kinds   []string
	parsers []fluent.Parser[string]
}

// Lexicon compiles every lexical production that has a body and is not a
// part of another lexical production.
func (g *Grammar) Lexicon() (*Lexicon, error) {
	lx := &Lexicon{}
	b := newBuilder(g.productions)
	parts := g.fragments()
	for _, name := range g.Productions() {
		if !IsLexical(name) || g.productions[name].Expr == nil || parts[name] {
			continue
		}
		p, err := b.rule(name)
		if err != nil {
			return nil, err
		}
		compiled, err := fluent.Compile(p, fluent.WithDiscard())
		if err != nil {
			return nil, fmt.Errorf("compile token %s: %w", name, err)
		}
		lx.kinds = append(lx.kinds, name)
		lx.parsers = append(lx.parsers, compiled)
	}
	log.Debugf("lexicon of %s: %d tokens", g.Filename, len(lx.kinds))
	return lx, nil
}

// fragments returns the lexical productions referenced by other lexical
// productions.
func (g *Grammar) fragments() map[string]bool {
	parts := make(map[string]bool)
	for name, prod := range g.productions {
		if !IsLexical(name) {
			continue
		}
		references(prod.Expr, func(ref string) {
			if ref != name {
				parts[ref] = true
			}
		})
	}
	return parts
}

func references(expr ebnf.Expression, visit func(name string)) {
	switch e := expr.(type) {
	case ebnf.Sequence:
		for _, x := range e {
			references(x, visit)
		}
	case ebnf.Alternative:
		for _, x := range e {
			references(x, visit)
		}
	case *ebnf.Option:
		references(e.Body, visit)
	case *ebnf.Group:
		references(e.Body, visit)
	case *ebnf.Repetition:
		references(e.Body, visit)
	case *ebnf.Name:
		visit(e.String)
	}
}

// Kinds returns the token kinds in the order they are tried.
func (lx *Lexicon) Kinds() []string {
	return lx.kinds
}

// Lexer tokenizes one input.
type Lexer struct {
	lexicon *Lexicon
	ctx     *fluent.Context
}

func (lx *Lexicon) NewLexer(input, filename string) *Lexer {
	return &Lexer{
		lexicon: lx,
		ctx:     fluent.NewContext(input, fluent.WithFile(filename)),
	}
}

// NextToken skips whitespace and returns the longest token at the cursor.
// Ties go to the kind tried first. A character no token matches is returned
// as an Error token. At the end of input it returns an EOF token and io.EOF.
func (l *Lexer) NextToken() (Token, error) {
	sc := l.ctx.Scanner
	sc.SkipWhiteSpace()
	start := sc.Cursor.Position()
	if sc.Cursor.Eof() {
		return Token{Kind: EOF, Position: start}, io.EOF
	}

	best, bestEnd := -1, start.Offset
	for i, p := range l.lexicon.parsers {
		var res fluent.Result[string]
		if p.Parse(l.ctx, &res) && res.End > bestEnd {
			best, bestEnd = i, res.End
		}
		sc.Cursor.ResetPosition(start)
	}

	if best < 0 {
		sc.Cursor.Advance()
		return Token{
			Kind:     Error,
			Text:     sc.Cursor.Slice(start.Offset, sc.Cursor.Offset()),
			Position: start,
		}, nil
	}

	for sc.Cursor.Offset() < bestEnd {
		sc.Cursor.Advance()
	}
	return Token{
		Kind:     l.lexicon.kinds[best],
		Text:     sc.Cursor.Slice(start.Offset, bestEnd),
		Position: start,
	}, nil
}

// Tokenize reads all tokens, the final EOF token included.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		tokens = append(tokens, tok)
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
	}
}
