package value

import (
	"strings"

	"github.com/jacoelho/jed/internal/number"
)

const compactSeparator = ", \n"

// String renders entries as "key": value pairs inside an indented brace pair.
func (o *Object) String() string {
	var b strings.Builder
	b.WriteString("  {\n")
	for i, e := range o.Entries {
		if i > 0 {
			b.WriteString(compactSeparator)
		}
		b.WriteByte('\t')
		b.WriteString(Quote(e.Key))
		b.WriteString(": ")
		b.WriteString(e.Value.String())
	}
	b.WriteString("\n  }")
	return b.String()
}

// String renders the bare items without brackets.
func (a *Array) String() string {
	parts := make([]string, len(a.Items))
	for i, item := range a.Items {
		parts[i] = item.String()
	}
	return strings.Join(parts, compactSeparator)
}

func (s String) String() string {
	return Quote(string(s))
}

func (n Number) String() string {
	return number.FormatCompact(float64(n))
}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (Null) String() string {
	return "null"
}
