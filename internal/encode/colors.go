package encode

import (
	"github.com/fatih/color"
)

// Colors decorates the pretty form. A nil func leaves that part plain.
type Colors struct {
	Key    func(a ...any) string
	String func(a ...any) string
	Number func(a ...any) string
	Bool   func(a ...any) string
	Null   func(a ...any) string
	Punct  func(a ...any) string
}

// NewColors returns the default palette. The palette is enabled regardless of
// whether the process writes to a terminal; callers decide when to use it.
func NewColors() *Colors {
	return &Colors{
		Key:    sprint(color.New(color.FgBlue, color.Bold)),
		String: sprint(color.RGB(8, 196, 16)),
		Number: sprint(color.RGB(128, 216, 236)),
		Bool:   sprint(color.New(color.FgCyan)),
		Null:   sprint(color.RGB(168, 0, 196)),
		Punct:  sprint(color.New(color.Faint)),
	}
}

func sprint(c *color.Color) func(a ...any) string {
	c.EnableColor()
	return c.SprintFunc()
}

type part int

const (
	partKey part = iota
	partString
	partNumber
	partBool
	partNull
	partPunct
)

func (c *Colors) paint(pt part, s string) string {
	if c == nil {
		return s
	}

	var f func(a ...any) string
	switch pt {
	case partKey:
		f = c.Key
	case partString:
		f = c.String
	case partNumber:
		f = c.Number
	case partBool:
		f = c.Bool
	case partNull:
		f = c.Null
	case partPunct:
		f = c.Punct
	}
	if f == nil {
		return s
	}
	return f(s)
}
