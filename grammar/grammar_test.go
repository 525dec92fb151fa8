package grammar

import (
	"strings"
	"testing"

	"github.com/dhamidi/combi/fluent"
	"github.com/dhamidi/combi/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arithmetic = `
Expr   = Term { ( "+" | "-" ) Term } .
Term   = Factor { ( "*" | "/" ) Factor } .
Factor = number | ident | "(" Expr ")" .
number = digit { digit } .
ident  = letter { letter | digit } .
digit  = "0" … "9" .
letter = "a" … "z" | "A" … "Z" .
`

func mustParse(t *testing.T, src string) *Grammar {
	t.Helper()
	g, err := Parse("test.ebnf", strings.NewReader(src))
	require.NoError(t, err)
	return g
}

func TestParseAndVerify(t *testing.T) {
	g := mustParse(t, arithmetic)
	require.NoError(t, g.Verify("Expr"))
	assert.Equal(t, []string{"Expr", "Factor", "Term", "digit", "ident", "letter", "number"}, g.Productions())

	assert.Error(t, g.Verify("Missing"))

	unused := mustParse(t, arithmetic+`Unused = "u" .`)
	assert.Error(t, unused.Verify("Expr"), "Unused is not reachable from Expr")

	upward := mustParse(t, `List = item { "," item } . item = List | "x" .`)
	err := upward.Verify("List")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference to non-lexical production List")

	_, err = Parse("broken.ebnf", strings.NewReader(`a = "x"`))
	assert.Error(t, err)
}

func TestIsLexical(t *testing.T) {
	assert.True(t, IsLexical("number"))
	assert.True(t, IsLexical("decimal_digit"))
	assert.True(t, IsLexical("_tail"))
	assert.False(t, IsLexical("Expr"))
	assert.False(t, IsLexical("Ärger"))
}

func TestParserMatchesSourceText(t *testing.T) {
	g := mustParse(t, arithmetic)
	expr, err := g.Parser("Expr")
	require.NoError(t, err)
	compiled, err := fluent.Compile(expr)
	require.NoError(t, err)

	tests := []struct {
		input string
		ok    bool
		text  string
		end   int
	}{
		{"1", true, "1", 1},
		{"1 + foo*(2- x)", true, "1 + foo*(2- x)", 14},
		{"  a1+b", true, "a1+b", 6},
		{"1 +", true, "1", 1},
		{"(1", false, "", 0},
		{"+", false, "", 0},
		{"", false, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			for _, p := range []fluent.Parser[string]{expr, compiled} {
				res, ok := fluent.TryParse(p, tt.input)
				require.Equal(t, tt.ok, ok)
				if ok {
					assert.Equal(t, tt.text, res.Value)
					assert.Equal(t, tt.end, res.End)
				}
			}
		})
	}
}

func TestLexicalProductionsDoNotSkipWhitespace(t *testing.T) {
	g := mustParse(t, arithmetic)
	number, err := g.Parser("number")
	require.NoError(t, err)

	_, ok := fluent.TryParse(number, " 12")
	assert.False(t, ok)

	res, ok := fluent.TryParse(number, "12 3")
	require.True(t, ok)
	assert.Equal(t, "12", res.Value)
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		start   string
		message string
	}{
		{"undefined reference", `a = b .`, "a", `undefined production "b"`},
		{"undefined start", `a = "x" .`, "z", `undefined production "z"`},
		{"wide range bound", `a = "ab" … "c" .`, "a", "not a single character"},
		{"decreasing range", `a = "z" … "a" .`, "a", "empty range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.src)
			_, err := g.Parser(tt.start)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestEmptyProduction(t *testing.T) {
	g := mustParse(t, `List = "[" Items "]" . Items = .`)
	require.NoError(t, g.Verify("List"))
	p, err := g.Parser("List")
	require.NoError(t, err)

	res, ok := fluent.TryParse(p, "[ ]")
	require.True(t, ok)
	assert.Equal(t, "[ ]", res.Value)
}

func TestRecursiveGrammarCompiles(t *testing.T) {
	g := mustParse(t, `Nest = "(" [ Nest ] ")" .`)
	p, err := g.Parser("Nest")
	require.NoError(t, err)
	compiled, err := fluent.Compile(p)
	require.NoError(t, err)
	assert.Len(t, compiled.Subroutines(), 2, "captured references compile in discard mode")

	for _, q := range []fluent.Parser[string]{p, compiled} {
		res, ok := fluent.TryParse(q, "((( )))x")
		require.True(t, ok)
		assert.Equal(t, "((( )))", res.Value)

		_, ok = fluent.TryParse(q, "(()")
		assert.False(t, ok)
	}
}

func TestLexer(t *testing.T) {
	g := mustParse(t, arithmetic)
	lexicon, err := g.Lexicon()
	require.NoError(t, err)
	assert.Equal(t, []string{"ident", "number"}, lexicon.Kinds(), "digit and letter only occur inside tokens")

	tokens, err := lexicon.NewLexer("foo 42+x", "input").Tokenize()
	require.NoError(t, err)

	want := []Token{
		{Kind: "ident", Text: "foo", Position: scan.Position{Offset: 0, Line: 1, Column: 1}},
		{Kind: "number", Text: "42", Position: scan.Position{Offset: 4, Line: 1, Column: 5}},
		{Kind: Error, Text: "+", Position: scan.Position{Offset: 6, Line: 1, Column: 7}},
		{Kind: "ident", Text: "x", Position: scan.Position{Offset: 7, Line: 1, Column: 8}},
		{Kind: EOF, Position: scan.Position{Offset: 8, Line: 1, Column: 9}},
	}
	assert.Equal(t, want, tokens)
	assert.Equal(t, `1:5 number "42"`, tokens[1].String())
}
