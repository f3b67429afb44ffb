package runner

import (
	"fmt"
	"io"

	"github.com/jacoelho/jed/internal/config"
	"github.com/jacoelho/jed/internal/diff"
	"github.com/jacoelho/jed/internal/document"
	"github.com/jacoelho/jed/internal/encode"
	"github.com/jacoelho/jed/internal/exit"
	"github.com/jacoelho/jed/internal/value"
)

// diffContext is the number of unchanged lines shown around each change.
const diffContext = 3

func (r *Runner) prettyOptions() []encode.Option {
	if !r.color {
		return nil
	}
	return []encode.Option{encode.WithColors(encode.NewColors())}
}

// render prints v to stdout in the configured format.
func (r *Runner) render(v value.Value) int {
	var err error
	if r.config.Format == config.FormatYAML {
		err = encode.YAML(r.stdout, v)
	} else {
		err = writePretty(r.stdout, v, r.prettyOptions()...)
	}
	if err != nil {
		return r.fail(fmt.Errorf("failed to write output: %w", err))
	}
	return exit.CodeSuccess
}

func writePretty(w io.Writer, v value.Value, opts ...encode.Option) error {
	if err := encode.Pretty(w, v, opts...); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// snapshot renders the part of doc that persist will write, for dry runs.
func (r *Runner) snapshot(doc *document.Document) (string, error) {
	if !r.config.DryRun {
		return "", nil
	}
	return r.subtreeText(doc)
}

func (r *Runner) subtreeText(doc *document.Document) (string, error) {
	v, err := doc.Get(r.config.Subtree)
	if err != nil {
		return "", err
	}
	return encode.PrettyString(v) + "\n", nil
}

// persist delivers an edited document: a diff for dry runs, the origin file
// for --in-place, the --output file, or stdout.
func (r *Runner) persist(doc *document.Document, before string) int {
	switch {
	case r.config.DryRun:
		after, err := r.subtreeText(doc)
		if err != nil {
			return r.fail(err)
		}
		printer := diff.Printer{Context: diffContext, Color: r.color}
		changed, err := printer.Fprint(r.stdout, r.name(), before, after)
		if err != nil {
			return r.fail(fmt.Errorf("failed to write diff: %w", err))
		}
		if !changed {
			r.log.Info("no changes")
		}
		return exit.CodeSuccess

	case r.config.InPlace:
		if err := doc.Save(r.sink, r.config.Subtree); err != nil {
			return r.fail(err)
		}
		r.log.Info("saved", "file", doc.Origin())
		return exit.CodeSuccess

	case r.config.Output != "":
		if err := doc.SaveAs(r.sink, r.config.Output, r.config.Subtree); err != nil {
			return r.fail(err)
		}
		r.log.Info("saved", "file", r.config.Output)
		return exit.CodeSuccess

	default:
		if err := doc.PrettyPrint(r.stdout, r.config.Subtree, r.prettyOptions()...); err != nil {
			return r.fail(err)
		}
		return exit.CodeSuccess
	}
}
