package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/jacoelho/jed/internal/exit"
)

// Stdin is the file name that reads the document from standard input.
const Stdin = "-"

var (
	ErrNoArguments      = errors.New("no arguments provided")
	ErrNoCommand        = errors.New("no command specified")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrNoFile           = errors.New("no document file specified")
	ErrArguments        = errors.New("wrong number of arguments")
	ErrInvalidColor     = errors.New("color must be one of auto, always, never")
	ErrInvalidFormat    = errors.New("format must be one of json, yaml")
	ErrConflictingFlags = errors.New("conflicting flags")
)

// Command is the operation jed performs on the document.
type Command string

const (
	CommandValidate Command = "validate"
	CommandPrint    Command = "print"
	CommandGet      Command = "get"
	CommandSearch   Command = "search"
	CommandMatch    Command = "match"
	CommandContains Command = "contains"
	CommandQuery    Command = "query"
	CommandSet      Command = "set"
	CommandCreate   Command = "create"
	CommandDelete   Command = "delete"
	CommandMove     Command = "move"
	CommandApply    Command = "apply"
)

// arity is the number of arguments after the file; -1 means one or more.
var arity = map[Command]int{
	CommandValidate: 0,
	CommandPrint:    0,
	CommandGet:      1,
	CommandSearch:   1,
	CommandMatch:    1,
	CommandContains: 1,
	CommandQuery:    1,
	CommandSet:      2,
	CommandCreate:   2,
	CommandDelete:   1,
	CommandMove:     2,
	CommandApply:    -1,
}

// Mutates reports whether the command edits the document.
func (c Command) Mutates() bool {
	switch c {
	case CommandSet, CommandCreate, CommandDelete, CommandMove, CommandApply:
		return true
	default:
		return false
	}
}

// Renders reports whether the command prints document values.
func (c Command) Renders() bool {
	switch c {
	case CommandPrint, CommandGet, CommandSearch, CommandMatch, CommandQuery:
		return true
	default:
		return false
	}
}

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// String implements flag.Value.
func (c *ColorMode) String() string {
	return string(*c)
}

// Set implements flag.Value.
func (c *ColorMode) Set(value string) error {
	switch mode := ColorMode(strings.ToLower(value)); mode {
	case ColorAuto, ColorAlways, ColorNever:
		*c = mode
		return nil
	default:
		return fmt.Errorf("%w, got: %s", ErrInvalidColor, value)
	}
}

// Format selects how values are printed.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// String implements flag.Value.
func (f *Format) String() string {
	return string(*f)
}

// Set implements flag.Value.
func (f *Format) Set(value string) error {
	switch format := Format(strings.ToLower(value)); format {
	case FormatJSON, FormatYAML:
		*f = format
		return nil
	default:
		return fmt.Errorf("%w, got: %s", ErrInvalidFormat, value)
	}
}

// Config represents the complete configuration for the jed tool.
type Config struct {
	Command Command
	File    string
	Args    []string

	Debug  bool
	Strict bool

	// Output selection
	Subtree string
	Format  Format
	Color   ColorMode

	// Persistence of edits
	Output        string
	InPlace       bool
	DryRun        bool
	Transactional bool
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	want, ok := arity[c.Command]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, c.Command)
	}

	if c.File == "" {
		return ErrNoFile
	}
	if c.File != Stdin {
		if _, err := os.Stat(c.File); err != nil {
			return fmt.Errorf("document file %s not found: %w", c.File, err)
		}
	}

	switch {
	case want < 0 && len(c.Args) == 0:
		return fmt.Errorf("%w: %s needs at least one argument after the file", ErrArguments, c.Command)
	case want >= 0 && len(c.Args) != want:
		return fmt.Errorf("%w: %s needs %d argument(s) after the file, got %d", ErrArguments, c.Command, want, len(c.Args))
	}

	if c.Command == CommandApply {
		for _, script := range c.Args {
			if _, err := os.Stat(script); err != nil {
				return fmt.Errorf("script file %s not found: %w", script, err)
			}
		}
	}

	if c.InPlace && c.Output != "" {
		return fmt.Errorf("%w: --in-place and --output", ErrConflictingFlags)
	}
	if c.InPlace && c.File == Stdin {
		return fmt.Errorf("%w: --in-place with standard input", ErrConflictingFlags)
	}
	if c.InPlace && !c.Command.Mutates() {
		return fmt.Errorf("%w: --in-place with %s", ErrConflictingFlags, c.Command)
	}
	if c.InPlace && c.Subtree != "" {
		return fmt.Errorf("%w: --in-place would replace %s with a subtree", ErrConflictingFlags, c.File)
	}
	if c.Output != "" && !c.Command.Mutates() && c.Command != CommandPrint {
		return fmt.Errorf("%w: --output with %s", ErrConflictingFlags, c.Command)
	}
	if c.DryRun && !c.Command.Mutates() {
		return fmt.Errorf("%w: --dry-run with %s", ErrConflictingFlags, c.Command)
	}
	if c.Transactional && c.Command != CommandApply {
		return fmt.Errorf("%w: --transactional with %s", ErrConflictingFlags, c.Command)
	}
	if c.Format == FormatYAML && !c.Command.Renders() {
		return fmt.Errorf("%w: --format yaml with %s", ErrConflictingFlags, c.Command)
	}
	if c.Format == FormatYAML && c.Output != "" {
		return fmt.Errorf("%w: --format yaml and --output", ErrConflictingFlags)
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Usagef("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	var (
		debug         = fs.Bool("debug", false, "Log each operation to stderr")
		strict        = fs.Bool("strict", false, "Reject documents with trailing input after the top-level value")
		subtree       = fs.String("subtree", "", "Path of the subtree to print or save (default: whole document)")
		output        = fs.String("output", "", "Write the result to FILE instead of standard output")
		inPlace       = fs.Bool("in-place", false, "Write the result back to the document file")
		dryRun        = fs.Bool("dry-run", false, "Print a diff of the changes instead of writing them")
		transactional = fs.Bool("transactional", false, "Keep all steps of a script or none of them")
		color         = ColorAuto
		format        = FormatJSON
	)

	fs.Var(&color, "color", "Color output: auto, always or never")
	fs.Var(&format, "format", "Print format: json or yaml")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Usagef("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	positional := fs.Args()
	if len(positional) == 0 {
		return nil, exit.Usagef("Error: %v\n\n%s", ErrNoCommand, Usage())
	}

	config := &Config{
		Command:       Command(positional[0]),
		Debug:         *debug,
		Strict:        *strict,
		Subtree:       *subtree,
		Format:        format,
		Color:         color,
		Output:        *output,
		InPlace:       *inPlace,
		DryRun:        *dryRun,
		Transactional: *transactional,
	}
	if len(positional) > 1 {
		config.File = positional[1]
		config.Args = slices.Clone(positional[2:])
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Usagef("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `jed - JSON document editor

Usage: jed [options] <command> <file> [arguments]

Commands:
  validate <file>                  Check that the file is exactly one JSON value
  print <file>                     Pretty-print the document (or --subtree)
  get <file> <path>                Print the value at path
  search <file> <key>              Print every value stored under key, with its path
  match <file> <pattern>           Like search, with a regular expression matched against whole keys
  contains <file> <text>           Exit 0 if some string value contains text, 1 otherwise
  query <file> <jsonpath>          Print the values selected by a JSONPath expression
  set <file> <path> <json>         Replace the value of an existing key
  create <file> <path> <json>      Add a key, creating missing parent objects
  delete <file> <path>             Remove a key and its value
  move <file> <from> <to>          Move a value to a new key
  apply <file> <script.yaml> ...   Run YAML edit scripts

Paths are object keys separated by '/'. The file "-" reads standard input.
Edits are printed to standard output unless --in-place or --output is given.

Options:
  --debug                 Log each operation to stderr
  --strict                Reject documents with trailing input after the top-level value
  --subtree PATH          Path of the subtree to print or save (default: whole document)
  --output FILE           Write the result to FILE instead of standard output
  --in-place              Write the result back to the document file
  --dry-run               Print a diff of the changes instead of writing them
  --transactional         Keep all steps of a script or none of them
  --color MODE            Color output: auto, always or never (default: auto)
  --format FORMAT         Print format: json or yaml (default: json)
  -h, --help              Show this help message

Examples:
  jed validate config.json
  jed get config.json server/port
  jed --in-place set config.json server/port 8080
  jed --dry-run create config.json server/tls '{"enabled": true}'
  jed --format yaml print config.json
  jed query config.json '$..port'
  jed --transactional --in-place apply config.json migrate.yaml`
}
