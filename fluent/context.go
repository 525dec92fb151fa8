package fluent

import (
	"fmt"

	"github.com/dhamidi/combi/scan"
	"github.com/tliron/commonlog"
)

// Context carries the state of one parse: the scanner over the input and the
// tracing settings. A Context must not be shared between concurrent parses.
type Context struct {
	Scanner *scan.Scanner

	trace bool
	log   commonlog.Logger
	depth int
}

type Option func(*Context)

// WithTrace logs every interpreted node entry and exit at debug level.
func WithTrace() Option {
	return func(c *Context) {
		c.trace = true
	}
}

func WithLogger(l commonlog.Logger) Option {
	return func(c *Context) {
		c.log = l
	}
}

// WithFile names the input in errors and traces.
func WithFile(name string) Option {
	return func(c *Context) {
		c.Scanner.Filename = name
	}
}

func NewContext(input string, opts ...Option) *Context {
	c := &Context{
		Scanner: scan.NewScanner(input),
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EnterParser is called by nodes when they start parsing.
func (c *Context) EnterParser(p fmt.Stringer) {
	if !c.trace {
		return
	}
	c.log.Debugf("%*s> %s at %s", c.depth*2, "", p, c.Scanner.Cursor.Position())
	c.depth++
}

// ExitParser is called by nodes when they return.
func (c *Context) ExitParser(p fmt.Stringer, ok bool) {
	if !c.trace {
		return
	}
	c.depth--
	mark := "fail"
	if ok {
		mark = "ok"
	}
	c.log.Debugf("%*s< %s %s at %s", c.depth*2, "", p, mark, c.Scanner.Cursor.Position())
}
