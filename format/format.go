// Package format renders the reports printed by the combi commands.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/combi/scan"
)

// Position is a location in an input.
type Position struct {
	Offset int `json:"offset" yaml:"offset"`
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

func PositionOf(p scan.Position) Position {
	return Position{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Match is the outcome of running a recognizer over one input.
type Match struct {
	Grammar string   `json:"grammar" yaml:"grammar"`
	Start   string   `json:"start" yaml:"start"`
	Input   string   `json:"input" yaml:"input"`
	Mode    string   `json:"mode" yaml:"mode"`
	Matched bool     `json:"matched" yaml:"matched"`
	From    Position `json:"from" yaml:"from"`
	To      Position `json:"to" yaml:"to"`
	Text    string   `json:"text,omitempty" yaml:"text,omitempty"`
	Rest    int      `json:"rest" yaml:"rest"` // bytes left after the match
}

// Token is one lexical element.
type Token struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Text     string   `json:"text" yaml:"text"`
	Position Position `json:"position" yaml:"position"`
}

// Report is everything one command prints. Empty parts are omitted.
type Report struct {
	Match  *Match  `json:"match,omitempty" yaml:"match,omitempty"`
	Tokens []Token `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(report *Report) error
}

// NewEncoder returns the encoder registered under name: text, json or yaml.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
