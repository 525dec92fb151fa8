// Package grammar builds fluent recognizers from EBNF grammars.
//
// Grammars use the notation and naming convention of golang.org/x/exp/ebnf.
// Productions whose name does not start with an upper-case letter, such as
// number or decimal_digit, are lexical: they match characters exactly. In
// productions with an upper-case name every terminal, and every reference to
// a lexical production, skips leading whitespace first. Alternatives are
// ordered: the first one that matches wins.
package grammar

import (
	"fmt"
	"io"
	"os"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/combi/fluent"
	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"
)

var log = commonlog.GetLogger("combi.grammar")

// Grammar is a parsed EBNF grammar.
type Grammar struct {
	Filename    string
	productions ebnf.Grammar
}

// Parse reads a grammar from r. The filename is used in error positions.
func Parse(filename string, r io.Reader) (*Grammar, error) {
	productions, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	log.Debugf("parsed %s: %d productions", filename, len(productions))
	return &Grammar{Filename: filename, productions: productions}, nil
}

// Load reads a grammar from a file.
func Load(filename string) (*Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()
	return Parse(filename, f)
}

// Verify checks that every production used is defined, every production is
// reachable from start and lexical productions only refer to lexical ones.
func (g *Grammar) Verify(start string) error {
	if err := ebnf.Verify(g.productions, start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

// Productions returns the production names in sorted order.
func (g *Grammar) Productions() []string {
	names := make([]string, 0, len(g.productions))
	for name := range g.productions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsLexical reports whether the production name denotes a token. It agrees
// with the check ebnf.Verify applies.
func IsLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(r)
}

// Parser builds the recognizer of the start production. Its value is the
// matched source text.
func (g *Grammar) Parser(start string) (fluent.Parser[string], error) {
	b := newBuilder(g.productions)
	p, err := b.rule(start)
	if err != nil {
		return nil, err
	}
	log.Debugf("built %s: %d rules", start, len(b.rules))
	return p, nil
}

type builder struct {
	productions ebnf.Grammar
	rules       map[string]fluent.Parser[string]
}

func newBuilder(productions ebnf.Grammar) *builder {
	return &builder{
		productions: productions,
		rules:       make(map[string]fluent.Parser[string]),
	}
}

// rule returns the parser of a production, building it on first use.
func (b *builder) rule(name string) (fluent.Parser[string], error) {
	if p, ok := b.rules[name]; ok {
		return p, nil
	}
	prod, ok := b.productions[name]
	if !ok {
		return nil, fmt.Errorf("undefined production %q", name)
	}
	d := fluent.NewDeferred[string](name)
	b.rules[name] = d
	body, err := b.expr(prod.Expr, IsLexical(name))
	if err != nil {
		return nil, fmt.Errorf("production %s: %w", name, err)
	}
	d.Set(body)
	return d, nil
}

func (b *builder) expr(expr ebnf.Expression, lexical bool) (fluent.Parser[string], error) {
	token := func(p fluent.Parser[string]) fluent.Parser[string] {
		if lexical {
			return p
		}
		return fluent.SkipWhiteSpace(p)
	}

	switch e := expr.(type) {
	case nil:
		return fluent.Always(""), nil

	case *ebnf.Token:
		return token(fluent.Literal(e.String)), nil

	case *ebnf.Range:
		lo, err := singleChar(e.Begin)
		if err != nil {
			return nil, err
		}
		hi, err := singleChar(e.End)
		if err != nil {
			return nil, err
		}
		if lo > hi {
			return nil, fmt.Errorf("%s: empty range %q … %q", e.Pos(), lo, hi)
		}
		return token(fluent.Then(fluent.CharRange(lo, hi), func(r rune) string {
			return string(r)
		})), nil

	case ebnf.Sequence:
		parts, err := b.exprs(e, lexical)
		if err != nil {
			return nil, err
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return fluent.Capture(fluent.Sequence(parts...)), nil

	case ebnf.Alternative:
		alts, err := b.exprs(e, lexical)
		if err != nil {
			return nil, err
		}
		return fluent.OneOf(alts...), nil

	case *ebnf.Option:
		body, err := b.expr(e.Body, lexical)
		if err != nil {
			return nil, err
		}
		return fluent.Optional(body, ""), nil

	case *ebnf.Repetition:
		body, err := b.expr(e.Body, lexical)
		if err != nil {
			return nil, err
		}
		return fluent.Capture(fluent.ZeroOrMany(body)), nil

	case *ebnf.Group:
		return b.expr(e.Body, lexical)

	case *ebnf.Name:
		if _, ok := b.productions[e.String]; !ok {
			return nil, fmt.Errorf("%s: undefined production %q", e.Pos(), e.String)
		}
		ref, err := b.rule(e.String)
		if err != nil {
			return nil, err
		}
		if IsLexical(e.String) {
			return token(ref), nil
		}
		return ref, nil

	case *ebnf.Bad:
		return nil, fmt.Errorf("%s: %s", e.Pos(), e.Error)
	}
	return nil, fmt.Errorf("%s: unsupported expression %T", expr.Pos(), expr)
}

func (b *builder) exprs(list []ebnf.Expression, lexical bool) ([]fluent.Parser[string], error) {
	parts := make([]fluent.Parser[string], 0, len(list))
	for _, e := range list {
		p, err := b.expr(e, lexical)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}

func singleChar(t *ebnf.Token) (rune, error) {
	r, size := utf8.DecodeRuneInString(t.String)
	if size == 0 || size != len(t.String) {
		return 0, fmt.Errorf("%s: range bound %q is not a single character", t.Pos(), t.String)
	}
	return r, nil
}
