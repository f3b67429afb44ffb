package document

import (
	"fmt"
	"regexp"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/jed/internal/pathing"
	"github.com/jacoelho/jed/internal/value"
)

// Get returns the subtree at path; the empty path selects the whole
// document. The result stays owned by the document.
func (d *Document) Get(path string) (value.Value, error) {
	if pathing.IsWhole(path) {
		return d.root, nil
	}
	return walk(d.root, pathing.Split(path))
}

// SearchKey returns the value of every entry named key, in document order.
func (d *Document) SearchKey(key string) []value.Value {
	return value.SearchKey(d.root, key)
}

// SearchKeyPaths is SearchKey with the path of every match.
func (d *Document) SearchKeyPaths(key string) []value.Match {
	return value.Search(d.root, func(k string) bool { return k == key })
}

// SearchPattern returns the value of every entry whose whole key matches the
// regular expression pattern, in document order.
func (d *Document) SearchPattern(pattern string) ([]value.Value, error) {
	matches, err := d.SearchPatternPaths(pattern)
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, len(matches))
	for i, m := range matches {
		out[i] = m.Value
	}
	return out, nil
}

// SearchPatternPaths is SearchPattern with the path of every match.
func (d *Document) SearchPatternPaths(pattern string) ([]value.Match, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return value.Search(d.root, re.MatchString), nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrQuery, pattern, err)
	}
	return re, nil
}

// Contains reports whether any string value contains substr.
func (d *Document) Contains(substr string) bool {
	return value.Contains(d.root, substr)
}

// Query selects values with a JSONPath expression such as "$.user.name" or
// "$..tags[0]". The results are copies; editing them does not change the
// document. Objects in the results have their keys sorted.
func (d *Document) Query(expr string) ([]value.Value, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: JSONPath %s: %v", ErrQuery, expr, err)
	}

	nodes := path.Select(value.ToAny(d.root))
	out := make([]value.Value, 0, len(nodes))
	for _, node := range nodes {
		v, err := value.FromAny(node)
		if err != nil {
			return nil, fmt.Errorf("%w: JSONPath %s: %v", ErrQuery, expr, err)
		}
		out = append(out, v)
	}
	return out, nil
}
