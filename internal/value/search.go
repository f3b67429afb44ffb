package value

import (
	"strings"

	"github.com/jacoelho/jed/internal/stack"
)

// Match is an object entry found by a key search. Path is the slash-joined
// chain of object keys leading to the entry; array items add no segment.
type Match struct {
	Path  string
	Key   string
	Value Value
}

// SearchKey returns every entry value whose key equals key, in document order.
func SearchKey(root Value, key string) []Value {
	return values(Search(root, func(k string) bool { return k == key }))
}

// Search walks root depth-first and collects every object entry whose key
// satisfies match. Matched entries are searched as well, so nested matches
// follow their ancestor in the result.
func Search(root Value, match func(key string) bool) []Match {
	var results []Match
	search(root, match, nil, &results)
	return results
}

func search(v Value, match func(string) bool, path []string, results *[]Match) {
	switch v := v.(type) {
	case *Object:
		for _, e := range v.Entries {
			entryPath := append(path, e.Key)
			if match(e.Key) {
				*results = append(*results, Match{
					Path:  strings.Join(entryPath, "/"),
					Key:   e.Key,
					Value: e.Value,
				})
			}
			search(e.Value, match, entryPath[:len(entryPath):len(entryPath)], results)
		}
	case *Array:
		for _, item := range v.Items {
			search(item, match, path, results)
		}
	}
}

func values(matches []Match) []Value {
	out := make([]Value, len(matches))
	for i, m := range matches {
		out[i] = m.Value
	}
	return out
}

// Contains reports whether any string leaf under root contains substr.
// The walk stops at the first hit.
func Contains(root Value, substr string) bool {
	pending := stack.New[Value]()
	pending.Push(root)

	for !pending.IsEmpty() {
		v, _ := pending.Pop()
		switch v := v.(type) {
		case *Object:
			for i := len(v.Entries) - 1; i >= 0; i-- {
				pending.Push(v.Entries[i].Value)
			}
		case *Array:
			for i := len(v.Items) - 1; i >= 0; i-- {
				pending.Push(v.Items[i])
			}
		case String:
			if strings.Contains(string(v), substr) {
				return true
			}
		}
	}
	return false
}
