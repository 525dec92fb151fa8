package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/combi/fluent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calc = `
Expr   = Term { "+" Term } .
Term   = number | "(" Expr ")" .
number = digit { digit } .
digit  = "0" … "9" .
`

func writeGrammar(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calc.ebnf")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	path := writeGrammar(t, calc)

	out, err := execute(t, "", "check", path, "--start", "Expr")
	require.NoError(t, err)
	assert.Contains(t, out, "4 productions ok")

	_, err = execute(t, "", "check", path, "--start", "nope")
	assert.Error(t, err)

	_, err = execute(t, "", "check", writeGrammar(t, `a = "x"`))
	assert.Error(t, err)

	_, err = execute(t, "", "check", writeGrammar(t, `A = b . b = A | "x" .`), "--start", "A")
	assert.ErrorContains(t, err, "reference to non-lexical production A")
}

func TestMatch(t *testing.T) {
	path := writeGrammar(t, calc)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"interpreted", nil, "match\t-\tExpr\t1:1-1:10\tinterpreted\t\"1 + (2+3)\""},
		{"compiled", []string{"--compiled"}, "\tcompiled\t"},
		{"recognizer", []string{"--recognize"}, "\trecognizer\t\"1 + (2+3)\""},
		{"yaml", []string{"-o", "yaml"}, "text: 1 + (2+3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"match", path, "--start", "Expr"}, tt.args...)
			out, err := execute(t, "1 + (2+3)", args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestMatchFailures(t *testing.T) {
	path := writeGrammar(t, calc)

	out, err := execute(t, "+1", "match", path, "--start", "Expr")
	require.Error(t, err)
	var perr *fluent.ParseError
	assert.ErrorAs(t, err, &perr)
	assert.Contains(t, out, "nomatch")

	_, err = execute(t, "1 2", "match", path, "--start", "Expr")
	assert.NoError(t, err)
	_, err = execute(t, "1 2", "match", path, "--start", "Expr", "--all")
	assert.ErrorContains(t, err, "trailing input")

	_, err = execute(t, "1", "match", path)
	assert.Error(t, err, "--start is required")
}

func TestDump(t *testing.T) {
	path := writeGrammar(t, calc)
	out, err := execute(t, "", "dump", path, "--start", "Expr", "--recognize")
	require.NoError(t, err)
	assert.Contains(t, out, "routine Expr {")
	assert.Contains(t, out, "call Expr")
	assert.Contains(t, out, "subroutines")
}

func TestTokens(t *testing.T) {
	path := writeGrammar(t, calc)
	out, err := execute(t, "12 + 3", "tokens", path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"1:1\tnumber\t\"12\"",
		"1:4\tERROR\t\"+\"",
		"1:6\tnumber\t\"3\"",
		"1:7\tEOF\t\"\"",
	}, "\n")+"\n", out)
}
