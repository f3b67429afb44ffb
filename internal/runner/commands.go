package runner

import (
	"context"
	"fmt"
	"os"

	"github.com/jacoelho/jed/internal/config"
	"github.com/jacoelho/jed/internal/document"
	"github.com/jacoelho/jed/internal/exit"
	"github.com/jacoelho/jed/internal/results"
	"github.com/jacoelho/jed/internal/script"
	"github.com/jacoelho/jed/internal/value"
)

func (r *Runner) validate(_ *document.Document) int {
	fmt.Fprintf(r.stdout, "%s: valid\n", r.name())
	return exit.CodeSuccess
}

func (r *Runner) print(doc *document.Document) int {
	if r.config.Output != "" {
		if err := doc.SaveAs(r.sink, r.config.Output, r.config.Subtree); err != nil {
			return r.fail(err)
		}
		r.log.Info("saved", "file", r.config.Output)
		return exit.CodeSuccess
	}

	v, err := doc.Get(r.config.Subtree)
	if err != nil {
		return r.fail(err)
	}
	return r.render(v)
}

func (r *Runner) get(doc *document.Document) int {
	v, err := doc.Get(r.config.Args[0])
	if err != nil {
		return r.fail(err)
	}
	return r.render(v)
}

// search prints the matches as one object keyed by the path of each match.
// Paths repeat when keys do, which the object model allows.
func (r *Runner) search(doc *document.Document) int {
	key := r.config.Args[0]

	var matches []value.Match
	if r.config.Command == config.CommandMatch {
		var err error
		if matches, err = doc.SearchPatternPaths(key); err != nil {
			return r.fail(err)
		}
	} else {
		matches = doc.SearchKeyPaths(key)
	}

	r.log.Debug("search finished", "key", key, "matches", len(matches))
	if len(matches) == 0 {
		r.log.Info("no matches", "key", key)
		return exit.CodeFailure
	}

	out := value.NewObject()
	for _, m := range matches {
		out.Append(m.Path, value.Clone(m.Value))
	}
	return r.render(out)
}

func (r *Runner) contains(doc *document.Document) int {
	found := doc.Contains(r.config.Args[0])
	fmt.Fprintln(r.stdout, found)
	if !found {
		return exit.CodeFailure
	}
	return exit.CodeSuccess
}

func (r *Runner) query(doc *document.Document) int {
	selected, err := doc.Query(r.config.Args[0])
	if err != nil {
		return r.fail(err)
	}

	r.log.Debug("query finished", "expr", r.config.Args[0], "results", len(selected))
	if len(selected) == 0 {
		r.log.Info("no results", "expr", r.config.Args[0])
		return exit.CodeFailure
	}
	return r.render(value.NewArray(selected...))
}

// edit performs a single mutation. A failed mutation writes nothing.
func (r *Runner) edit(doc *document.Document) int {
	before, err := r.snapshot(doc)
	if err != nil {
		return r.fail(err)
	}

	args := r.config.Args
	switch r.config.Command {
	case config.CommandSet:
		err = doc.Set(args[0], args[1])
	case config.CommandCreate:
		err = doc.Create(args[0], args[1])
	case config.CommandDelete:
		err = doc.Delete(args[0])
	case config.CommandMove:
		err = doc.Move(args[0], args[1])
	default:
		err = fmt.Errorf("%w: %q", config.ErrUnknownCommand, r.config.Command)
	}
	if err != nil {
		return r.fail(err)
	}

	r.log.Debug("edit applied", "command", r.config.Command, "args", args)
	return r.persist(doc, before)
}

// apply runs every script in order and stops at the first failing one. The
// step reports go to stderr. Without --transactional the steps that succeeded
// are written even though the exit code reports the failure; with it, a
// failure writes nothing.
func (r *Runner) apply(ctx context.Context, doc *document.Document) int {
	before, err := r.snapshot(doc)
	if err != nil {
		return r.fail(err)
	}

	opts := script.Options{Transactional: r.config.Transactional, Logger: r.log}

	var summaries []*results.Summary
	failed := false
	for _, name := range r.config.Args {
		steps, err := readScript(name)
		if err != nil {
			return r.fail(err)
		}

		var summary *results.Summary
		doc, summary = script.Apply(ctx, doc, name, steps, opts)
		summaries = append(summaries, summary)
		if summary.Failed() {
			failed = true
			break
		}
	}

	if err := r.formatter.Format(summaries...); err != nil {
		r.log.Error("failed to report results", "error", err)
	}

	if failed && r.config.Transactional {
		return exit.CodeFailure
	}
	if code := r.persist(doc, before); code != exit.CodeSuccess {
		return code
	}
	if failed {
		return exit.CodeFailure
	}
	return exit.CodeSuccess
}

func readScript(name string) ([]script.Step, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open script %s: %w", name, err)
	}
	defer f.Close()

	steps, err := script.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return steps, nil
}
