package script

import (
	"context"
	"log/slog"

	"github.com/jacoelho/jed/internal/clock"
	"github.com/jacoelho/jed/internal/document"
	"github.com/jacoelho/jed/internal/results"
)

// Options controls how a script is applied.
type Options struct {
	// Transactional keeps either every step or none of them.
	Transactional bool
	Logger        *slog.Logger
}

// Apply runs steps in order against doc, stopping at the first failure; the
// remaining steps are reported as skipped. Each step on its own is
// all-or-nothing. Without Transactional, steps that succeeded before a
// failure stay applied to doc. With Transactional the steps run against a
// clone, and the returned document is the clone on success and doc, untouched,
// on failure.
//
// A cancelled ctx fails the step that would have run next.
func Apply(ctx context.Context, doc *document.Document, name string, steps []Step, opts Options) (*document.Document, *results.Summary) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	target := doc
	if opts.Transactional {
		target = doc.Clone()
	}

	summary := results.NewSummary(name, len(steps))
	start := clock.Now()

	failed := false
	for i, step := range steps {
		builder := results.NewStepResultBuilder(i+1, string(step.Op), step.Target())
		if failed {
			summary.Add(builder.Skip())
			continue
		}

		stepStart := clock.Now()
		err := ctx.Err()
		if err == nil {
			err = step.Apply(target)
		}
		builder.WithDuration(clock.Since(stepStart)).WithError(err)
		summary.Add(builder)

		if err != nil {
			log.Debug("step failed", "script", name, "step", i+1, "op", step.Op, "target", step.Target(), "error", err)
			failed = true
			continue
		}
		log.Debug("step applied", "script", name, "step", i+1, "op", step.Op, "target", step.Target())
	}
	summary.SetTotalDuration(clock.Since(start))

	if !failed {
		return target, summary
	}
	if opts.Transactional {
		summary.SetRolledBack()
		log.Debug("script rolled back", "script", name)
	}
	return doc, summary
}

// Apply performs the step on doc.
func (s Step) Apply(doc *document.Document) error {
	switch s.Op {
	case OpSet:
		return doc.Set(s.Path, s.Literal)
	case OpCreate:
		return doc.Create(s.Path, s.Literal)
	case OpDelete:
		return doc.Delete(s.Path)
	case OpMove:
		return doc.Move(s.From, s.To)
	default:
		return s.Validate()
	}
}
