// Package encode renders value trees as indented JSON text and as YAML.
package encode

import (
	"io"
	"strings"

	"github.com/jacoelho/jed/internal/number"
	"github.com/jacoelho/jed/internal/value"
)

// Indent is added once per nesting level.
const Indent = "  "

// Option configures the pretty printer.
type Option func(*printer)

// WithColors decorates keys, scalars and punctuation.
func WithColors(c *Colors) Option {
	return func(p *printer) {
		p.colors = c
	}
}

type printer struct {
	w      io.Writer
	colors *Colors
	err    error
}

// Pretty writes v in file form: one entry per line, two spaces per level, no
// comma after the last entry of a container. No trailing newline is written.
func Pretty(w io.Writer, v value.Value, opts ...Option) error {
	p := &printer{w: w}
	for _, opt := range opts {
		opt(p)
	}
	p.value(v, "")
	return p.err
}

// PrettyString returns the file form of v.
func PrettyString(v value.Value, opts ...Option) string {
	var b strings.Builder
	_ = Pretty(&b, v, opts...)
	return b.String()
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) paint(pt part, s string) {
	p.write(p.colors.paint(pt, s))
}

func (p *printer) punct(s string) {
	p.paint(partPunct, s)
}

func (p *printer) value(v value.Value, indent string) {
	switch v := v.(type) {
	case *value.Object:
		p.punct("{")
		p.write("\n")
		for i, e := range v.Entries {
			p.write(indent + Indent)
			p.paint(partKey, value.Quote(e.Key))
			p.punct(":")
			p.write(" ")
			p.value(e.Value, indent+Indent)
			if i < len(v.Entries)-1 {
				p.punct(",")
			}
			p.write("\n")
		}
		p.write(indent)
		p.punct("}")
	case *value.Array:
		p.punct("[")
		p.write("\n")
		for i, item := range v.Items {
			p.write(indent + Indent)
			p.value(item, indent+Indent)
			if i < len(v.Items)-1 {
				p.punct(",")
			}
			p.write("\n")
		}
		p.write(indent)
		p.punct("]")
	case value.String:
		p.paint(partString, value.Quote(string(v)))
	case value.Number:
		p.paint(partNumber, number.FormatPretty(float64(v)))
	case value.Bool:
		p.paint(partBool, v.String())
	case value.Null:
		p.paint(partNull, "null")
	}
}
