package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineEncoder prints one tab-separated line per match or token.
type LineEncoder struct {
	w      io.Writer
	report *Report
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(report *Report) error {
	e.report = report
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder

	if m := e.report.Match; m != nil {
		status := "match"
		if !m.Matched {
			status = "nomatch"
		}
		fmt.Fprintf(&sb, "%s\t%s\t%s\t%s-%s\t%s\t%s\n",
			status,
			m.Input,
			m.Start,
			m.From,
			m.To,
			m.Mode,
			strconv.Quote(m.Text),
		)
		if m.Rest > 0 {
			fmt.Fprintf(&sb, "rest\t%d bytes\n", m.Rest)
		}
	}

	for _, t := range e.report.Tokens {
		fmt.Fprintf(&sb, "%s\t%s\t%s\n", t.Position, t.Kind, strconv.Quote(t.Text))
	}

	return []byte(sb.String()), nil
}
