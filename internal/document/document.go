// Package document is the path-addressed editing engine.
//
// A Document owns one value tree and mutates it in place. Every operation is
// all-or-nothing: paths are resolved and literals parsed before the tree is
// touched, so a failed call leaves the document exactly as it was.
//
// A Document has no internal locking; callers that share one between
// goroutines must serialize every call.
package document

import (
	"github.com/jacoelho/jed/internal/encode"
	"github.com/jacoelho/jed/internal/parser"
	"github.com/jacoelho/jed/internal/value"
)

// Document is a parsed JSON document and the name it was loaded from.
type Document struct {
	root   value.Value
	origin string
	source string
}

// New parses text and returns its document. Like parser.Parser.Build, text
// after the first value is not examined; use Check or Validate for a full
// syntax check. origin is the default save destination and may be empty.
func New(text, origin string) (*Document, error) {
	root, err := parser.New(text).Build()
	if err != nil {
		return nil, err
	}

	return &Document{root: root, origin: origin, source: text}, nil
}

// FromValue wraps an existing tree, taking ownership of it.
func FromValue(root value.Value, origin string) *Document {
	if root == nil {
		root = value.NewObject()
	}
	return &Document{root: root, origin: origin, source: encode.PrettyString(root)}
}

// Root returns the tree. It remains owned by the document.
func (d *Document) Root() value.Value {
	return d.root
}

// Origin returns the default save destination.
func (d *Document) Origin() string {
	return d.origin
}

// Check re-scans the source text from the start and reports the first
// lexical or syntax error, including input after the top-level value.
func (d *Document) Check() error {
	return parser.New(d.source).Check()
}

// Validate reports whether the source text is exactly one JSON value.
func (d *Document) Validate() bool {
	return d.Check() == nil
}

// Clone returns an independent deep copy.
func (d *Document) Clone() *Document {
	return &Document{
		root:   value.Clone(d.root),
		origin: d.origin,
		source: d.source,
	}
}

// String renders the compact display form of the whole document.
func (d *Document) String() string {
	return d.root.String()
}
