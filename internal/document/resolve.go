package document

import (
	"fmt"

	"github.com/jacoelho/jed/internal/pathing"
	"github.com/jacoelho/jed/internal/value"
)

// walk follows segments from root. Every node it descends from must be an
// object; the first entry with a matching key is taken.
func walk(root value.Value, segments []string) (value.Value, error) {
	current := root
	for i, seg := range segments {
		obj, ok := current.(*value.Object)
		if !ok {
			return nil, notObject(segments[:i], current)
		}
		child, ok := obj.Get(seg)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, pathing.Join(segments[:i+1]))
		}
		current = child
	}
	return current, nil
}

// parentOf resolves all but the last segment, which must lead to an object.
func parentOf(root value.Value, segments []string) (*value.Object, string, error) {
	last := len(segments) - 1
	parent, err := walk(root, segments[:last])
	if err != nil {
		return nil, "", err
	}
	obj, ok := parent.(*value.Object)
	if !ok {
		return nil, "", notObject(segments[:last], parent)
	}
	return obj, segments[last], nil
}

// entryOf resolves segments to the index of an existing entry in its parent.
func entryOf(root value.Value, segments []string) (*value.Object, int, error) {
	parent, key, err := parentOf(root, segments)
	if err != nil {
		return nil, -1, err
	}
	i := parent.Index(key)
	if i < 0 {
		return nil, -1, fmt.Errorf("%w: %q", ErrNotFound, pathing.Join(segments))
	}
	return parent, i, nil
}

func notObject(segments []string, v value.Value) error {
	at := pathing.Join(segments)
	if len(segments) == 0 {
		at = "document root"
	}
	return fmt.Errorf("%w: %q is %v", ErrNotObject, at, v.Kind())
}

// insertion is a planned create. Nothing is changed until apply runs, and
// apply cannot fail.
type insertion struct {
	parent  *value.Object
	missing []string
	key     string
}

// planInsert resolves the parent of segments, noting intermediate objects that
// do not exist yet instead of creating them.
func planInsert(root value.Value, segments []string) (insertion, error) {
	last := len(segments) - 1
	current := root
	for i, seg := range segments[:last] {
		obj, ok := current.(*value.Object)
		if !ok {
			return insertion{}, notObject(segments[:i], current)
		}
		child, ok := obj.Get(seg)
		if !ok {
			return insertion{parent: obj, missing: segments[i:last], key: segments[last]}, nil
		}
		current = child
	}

	obj, ok := current.(*value.Object)
	if !ok {
		return insertion{}, notObject(segments[:last], current)
	}
	if obj.Index(segments[last]) >= 0 {
		return insertion{}, fmt.Errorf("%w: %q already exists", ErrConflict, pathing.Join(segments))
	}
	return insertion{parent: obj, key: segments[last]}, nil
}

func (ins insertion) apply(v value.Value) {
	target := ins.parent
	for _, seg := range ins.missing {
		child := value.NewObject()
		target.Append(seg, child)
		target = child
	}
	target.Append(ins.key, v)
}
