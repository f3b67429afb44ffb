// Package script reads YAML edit scripts: ordered lists of document
// mutations applied as a batch.
//
//	- op: set
//	  path: user/age
//	  value: 31
//	- op: create
//	  path: user/tags
//	  literal: '["admin"]'
//	- op: move
//	  from: user/tags
//	  to: meta/tags
//	- op: delete
//	  path: tmp
//
// The new value of set and create is given either as YAML under value, or as
// JSON text under literal. Either way it ends up as JSON text parsed by the
// document itself.
package script

import (
	"errors"
	"fmt"
	"io"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"github.com/jacoelho/jed/internal/encode"
	"github.com/jacoelho/jed/internal/value"
)

// ErrScript is the sentinel error for malformed scripts.
var ErrScript = errors.New("script error")

// Op names a document mutation.
type Op string

const (
	OpSet    Op = "set"
	OpCreate Op = "create"
	OpDelete Op = "delete"
	OpMove   Op = "move"
)

// Step is one mutation of a script.
type Step struct {
	Op      Op
	Path    string
	From    string
	To      string
	Literal string
}

// Target describes the paths a step touches.
func (s Step) Target() string {
	if s.Op == OpMove {
		return s.From + " -> " + s.To
	}
	return s.Path
}

// Validate checks that the step carries exactly the fields its op needs.
func (s Step) Validate() error {
	switch s.Op {
	case OpSet, OpCreate:
		if strings.TrimSpace(s.Literal) == "" {
			return fmt.Errorf("%w: %s %q: missing value", ErrScript, s.Op, s.Path)
		}
	case OpDelete:
	case OpMove:
		if s.From == "" || s.To == "" {
			return fmt.Errorf("%w: move requires both 'from' and 'to'", ErrScript)
		}
	case "":
		return fmt.Errorf("%w: missing 'op'", ErrScript)
	default:
		return fmt.Errorf("%w: unknown op %q", ErrScript, s.Op)
	}
	return nil
}

// Parse decodes a YAML script.
func Parse(r io.Reader) ([]Step, error) {
	decoder := yaml.NewDecoder(r, yaml.UseOrderedMap())

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrScript, err)
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of steps, got %T", ErrScript, doc)
	}

	steps := make([]Step, 0, len(items))
	for i, item := range items {
		fields, ok := item.(yaml.MapSlice)
		if !ok {
			return nil, fmt.Errorf("%w: step %d: expected a mapping", ErrScript, i+1)
		}
		step, err := decodeStep(fields)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func decodeStep(fields yaml.MapSlice) (Step, error) {
	var step Step
	var hasValue, hasLiteral bool

	for _, item := range fields {
		key, ok := item.Key.(string)
		if !ok {
			return Step{}, fmt.Errorf("%w: key must be string, got %v", ErrScript, item.Key)
		}

		switch key {
		case "value":
			v, err := fromYAML(item.Value)
			if err != nil {
				return Step{}, fmt.Errorf("%w: value: %v", ErrScript, err)
			}
			step.Literal = encode.PrettyString(v)
			hasValue = true
			continue
		case "literal":
			s, ok := item.Value.(string)
			if !ok {
				return Step{}, fmt.Errorf("%w: literal must be a string of JSON text", ErrScript)
			}
			step.Literal = s
			hasLiteral = true
			continue
		}

		s, err := stringField(key, item.Value)
		if err != nil {
			return Step{}, err
		}
		switch key {
		case "op":
			step.Op = Op(s)
		case "path":
			step.Path = s
		case "from":
			step.From = s
		case "to":
			step.To = s
		default:
			return Step{}, fmt.Errorf("%w: unknown field %q", ErrScript, key)
		}
	}

	if hasValue && hasLiteral {
		return Step{}, fmt.Errorf("%w: 'value' and 'literal' are mutually exclusive", ErrScript)
	}
	if (hasValue || hasLiteral) && step.Op != OpSet && step.Op != OpCreate {
		return Step{}, fmt.Errorf("%w: %s takes no value", ErrScript, step.Op)
	}
	return step, nil
}

func stringField(key string, v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("%w: %s must be a string, got %v", ErrScript, key, v)
	}
}

// fromYAML converts decoded YAML, with mappings kept in source order, into a
// value tree.
func fromYAML(x any) (value.Value, error) {
	switch x := x.(type) {
	case yaml.MapSlice:
		obj := value.NewObject()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			child, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Append(key, child)
		}
		return obj, nil
	case []any:
		arr := value.NewArray()
		for _, item := range x {
			child, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			arr.Append(child)
		}
		return arr, nil
	default:
		return value.FromAny(x)
	}
}
