package value

// Clone returns a deep copy of v. The copy shares no containers with v.
func Clone(v Value) Value {
	switch v := v.(type) {
	case *Object:
		out := &Object{Entries: make([]Entry, len(v.Entries))}
		for i, e := range v.Entries {
			out.Entries[i] = Entry{Key: e.Key, Value: Clone(e.Value)}
		}
		return out
	case *Array:
		out := &Array{Items: make([]Value, len(v.Items))}
		for i, item := range v.Items {
			out.Items[i] = Clone(item)
		}
		return out
	default:
		// scalars are immutable values
		return v
	}
}

// Equal reports whether a and b have the same kinds, key order and values.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case *Object:
		b, ok := b.(*Object)
		if !ok || len(a.Entries) != len(b.Entries) {
			return false
		}
		for i := range a.Entries {
			if a.Entries[i].Key != b.Entries[i].Key || !Equal(a.Entries[i].Value, b.Entries[i].Value) {
				return false
			}
		}
		return true
	case *Array:
		b, ok := b.(*Array)
		if !ok || len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Null:
		_, ok := b.(Null)
		return ok
	}
	return false
}
