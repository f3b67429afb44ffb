// Package pathing splits and joins slash-separated document paths.
//
// A path is a sequence of object keys separated by '/'. There is no escaping,
// so keys containing '/' cannot be addressed, and there is no array index
// syntax.
package pathing

import (
	"slices"
	"strings"
)

// Separator divides path segments.
const Separator = "/"

// Split breaks path into segments. The empty path yields a single empty
// segment, which addresses the entry with key "".
func Split(path string) []string {
	return strings.Split(path, Separator)
}

// Join is the inverse of Split.
func Join(segments []string) string {
	return strings.Join(segments, Separator)
}

// IsWhole reports whether path addresses the whole document. Only callers
// that select a subtree (get, save, print) give the empty path that meaning;
// mutations treat it as the key "".
func IsWhole(path string) bool {
	return path == ""
}

// HasPrefix reports whether every segment of prefix matches the leading
// segments of segments.
func HasPrefix(segments, prefix []string) bool {
	return len(prefix) <= len(segments) && slices.Equal(segments[:len(prefix)], prefix)
}
