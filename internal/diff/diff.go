// Package diff compares two renderings of a document line by line.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the fate of a line when going from the old text to the new one.
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of either input without its terminating newline.
type Line struct {
	Op   Op
	Text string
}

// Lines returns the line diff between from and to, in order. Deleted lines
// precede the lines inserted in their place.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, table := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var out []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Op: op, Text: text})
		}
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Printer writes line diffs with a file header and limited context.
type Printer struct {
	// Context is the number of unchanged lines kept around each change.
	Context int
	Color   bool
}

// Fprint writes the diff between from and to, labelled with name. Nothing is
// written when the texts are equal.
func (p Printer) Fprint(w io.Writer, name, from, to string) (bool, error) {
	lines := Lines(from, to)
	if !Changed(lines) {
		return false, nil
	}

	paint := painter(p.Color)
	var b strings.Builder
	b.WriteString(paint(Delete, fmt.Sprintf("--- %s", name)) + "\n")
	b.WriteString(paint(Insert, fmt.Sprintf("+++ %s", name)) + "\n")

	keep := p.visible(lines)
	skipped := false
	for i, l := range lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			b.WriteString(paint(Equal, "@@") + "\n")
			skipped = false
		}
		b.WriteString(paint(l.Op, l.Op.prefix()+l.Text) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return true, err
}

// visible marks changed lines and their surrounding context.
func (p Printer) visible(lines []Line) []bool {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == Equal {
			continue
		}
		lo := max(0, i-p.Context)
		hi := min(len(lines)-1, i+p.Context)
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}
	return keep
}

func painter(enabled bool) func(Op, string) string {
	if !enabled {
		return func(_ Op, s string) string { return s }
	}

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	hunk := color.New(color.FgCyan)
	for _, c := range []*color.Color{del, ins, hunk} {
		c.EnableColor()
	}

	return func(op Op, s string) string {
		switch op {
		case Delete:
			return del.Sprint(s)
		case Insert:
			return ins.Sprint(s)
		default:
			if s == "@@" {
				return hunk.Sprint(s)
			}
			return s
		}
	}
}
