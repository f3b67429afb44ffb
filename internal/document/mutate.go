package document

import (
	"fmt"
	"strings"

	"github.com/jacoelho/jed/internal/parser"
	"github.com/jacoelho/jed/internal/pathing"
	"github.com/jacoelho/jed/internal/value"
)

// parseLiteral interprets literal with its own parser. The literal must be
// exactly one JSON value.
func parseLiteral(literal string) (value.Value, error) {
	if strings.TrimSpace(literal) == "" {
		return nil, fmt.Errorf("%w: empty value", ErrLiteralParse)
	}
	v, err := parser.Parse(literal)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLiteralParse, err)
	}
	return v, nil
}

// Set replaces the value of an existing entry. Intermediate segments are not
// created and the final key must already exist.
func (d *Document) Set(path, literal string) error {
	parent, i, err := entryOf(d.root, pathing.Split(path))
	if err != nil {
		return err
	}

	v, err := parseLiteral(literal)
	if err != nil {
		return err
	}

	parent.Replace(i, v)
	return nil
}

// Create appends a new entry. Missing intermediate segments become empty
// objects; the final key must not exist yet.
func (d *Document) Create(path, literal string) error {
	ins, err := planInsert(d.root, pathing.Split(path))
	if err != nil {
		return err
	}

	v, err := parseLiteral(literal)
	if err != nil {
		return err
	}

	ins.apply(v)
	return nil
}

// Delete removes an existing entry and its subtree, keeping the order of the
// remaining entries.
func (d *Document) Delete(path string) error {
	parent, i, err := entryOf(d.root, pathing.Split(path))
	if err != nil {
		return err
	}

	parent.Remove(i)
	return nil
}

// Move detaches the subtree at from and attaches it under to without copying
// it. Missing intermediate segments of to become empty objects; the final key
// of to must not exist, and to may not lie inside from.
func (d *Document) Move(from, to string) error {
	fromSegments := pathing.Split(from)
	toSegments := pathing.Split(to)

	srcParent, i, err := entryOf(d.root, fromSegments)
	if err != nil {
		return err
	}

	if pathing.HasPrefix(toSegments, fromSegments) {
		return fmt.Errorf("%w: cannot move %q into itself (%q)", ErrConflict, from, to)
	}

	ins, err := planInsert(d.root, toSegments)
	if err != nil {
		return err
	}

	moved := srcParent.Remove(i)
	ins.apply(moved)
	return nil
}
