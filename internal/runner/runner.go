// Package runner executes one jed command against a document.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jacoelho/jed/internal/config"
	"github.com/jacoelho/jed/internal/document"
	"github.com/jacoelho/jed/internal/exit"
	"github.com/jacoelho/jed/internal/fileio"
	"github.com/jacoelho/jed/internal/formatter"
	"github.com/jacoelho/jed/internal/formatter/stdout"
	"github.com/jacoelho/jed/internal/parser"
)

// Runner executes the configured command.
type Runner struct {
	config    *config.Config
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	color     bool
	log       *slog.Logger
	sink      document.Sink
	formatter formatter.Formatter
}

// New creates a Runner bound to the process streams.
// If creation fails, returns nil runner and exit result.
func New(cfg *config.Config) (*Runner, *exit.Result) {
	if cfg == nil {
		return nil, exit.Errorf("Error creating runner: no configuration\n")
	}
	return NewWithIO(cfg, os.Stdin, os.Stdout, os.Stderr), nil
}

// NewWithIO creates a Runner with custom streams.
func NewWithIO(cfg *config.Config, in io.Reader, out, errOut io.Writer) *Runner {
	return &Runner{
		config:    cfg,
		stdin:     in,
		stdout:    out,
		stderr:    errOut,
		color:     useColor(cfg.Color, out),
		log:       newLogger(errOut, cfg.Debug),
		sink:      fileio.Sink{},
		formatter: stdout.NewWithWriter(errOut),
	}
}

// useColor resolves the color mode. Auto colors only terminals.
func useColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run executes the command and returns the process exit code.
func (r *Runner) Run(ctx context.Context) int {
	doc, err := r.load()
	if err != nil {
		return r.fail(err)
	}

	r.log.Debug("document loaded", "file", r.config.File, "command", r.config.Command)

	switch r.config.Command {
	case config.CommandValidate:
		return r.validate(doc)
	case config.CommandPrint:
		return r.print(doc)
	case config.CommandGet:
		return r.get(doc)
	case config.CommandSearch, config.CommandMatch:
		return r.search(doc)
	case config.CommandContains:
		return r.contains(doc)
	case config.CommandQuery:
		return r.query(doc)
	case config.CommandApply:
		return r.apply(ctx, doc)
	default:
		return r.edit(doc)
	}
}

func (r *Runner) load() (*document.Document, error) {
	var (
		data   []byte
		err    error
		origin string
	)
	if r.config.File == config.Stdin {
		data, err = io.ReadAll(r.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
	} else {
		data, err = fileio.ReadFile(r.config.File)
		if err != nil {
			return nil, err
		}
		origin = r.config.File
	}

	text := string(data)
	if r.config.Strict || r.config.Command == config.CommandValidate {
		if err := parser.New(text).Check(); err != nil {
			return nil, fmt.Errorf("%s: %w", r.name(), err)
		}
	}

	doc, err := document.New(text, origin)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.name(), err)
	}
	return doc, nil
}

// name labels the document in messages.
func (r *Runner) name() string {
	if r.config.File == config.Stdin {
		return "<stdin>"
	}
	return r.config.File
}

func (r *Runner) fail(err error) int {
	r.log.Error(err.Error())
	return exit.CodeFailure
}
