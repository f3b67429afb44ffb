package formatter

import (
	"github.com/jacoelho/jed/internal/results"
)

// Formatter reports the outcome of edit scripts.
type Formatter interface {
	// Format writes one report per summary, followed by totals when there is
	// more than one.
	Format(summaries ...*results.Summary) error
}
