// Package value defines the JSON document tree.
//
// A Value is one of six concrete types: *Object, *Array, String, Number, Bool
// and Null. The interface is sealed, so a type switch over those six cases
// covers every value. Containers own their children exclusively: a child is
// referenced by exactly one object entry or array slot, and Clone is the only
// way to obtain a second copy.
package value

// Kind reports which of the six cases a Value is.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a node of the document tree.
type Value interface {
	Kind() Kind
	// String renders the compact display form.
	String() string
	sealed()
}

// Entry is a single key/value pair of an object.
type Entry struct {
	Key   string
	Value Value
}

// Object holds entries in insertion order. Keys are not required to be
// unique; lookups return the first match.
type Object struct {
	Entries []Entry
}

// Array holds items in order.
type Array struct {
	Items []Value
}

type (
	String string
	Number float64
	Bool   bool
	Null   struct{}
)

func (*Object) Kind() Kind { return KindObject }
func (*Array) Kind() Kind  { return KindArray }
func (String) Kind() Kind  { return KindString }
func (Number) Kind() Kind  { return KindNumber }
func (Bool) Kind() Kind    { return KindBool }
func (Null) Kind() Kind    { return KindNull }

func (*Object) sealed() {}
func (*Array) sealed()  {}
func (String) sealed()  {}
func (Number) sealed()  {}
func (Bool) sealed()    {}
func (Null) sealed()    {}

func NewObject() *Object {
	return &Object{}
}

func NewArray(items ...Value) *Array {
	for _, item := range items {
		if item == nil {
			panic("value: nil array item")
		}
	}
	return &Array{Items: items}
}

// Index returns the position of the first entry with the given key, or -1.
func (o *Object) Index(key string) int {
	for i := range o.Entries {
		if o.Entries[i].Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value of the first entry with the given key.
func (o *Object) Get(key string) (Value, bool) {
	i := o.Index(key)
	if i < 0 {
		return nil, false
	}
	return o.Entries[i].Value, true
}

// Append adds an entry at the end, taking ownership of v.
func (o *Object) Append(key string, v Value) {
	if v == nil {
		panic("value: nil entry value for key " + key)
	}
	o.Entries = append(o.Entries, Entry{Key: key, Value: v})
}

// Replace swaps the value at index i and returns the previous one, which the
// object no longer references.
func (o *Object) Replace(i int, v Value) Value {
	if v == nil {
		panic("value: nil replacement value")
	}
	old := o.Entries[i].Value
	o.Entries[i].Value = v
	return old
}

// Remove deletes the entry at index i, keeping the order of the others, and
// returns the detached value.
func (o *Object) Remove(i int) Value {
	old := o.Entries[i].Value
	copy(o.Entries[i:], o.Entries[i+1:])
	o.Entries[len(o.Entries)-1] = Entry{}
	o.Entries = o.Entries[:len(o.Entries)-1]
	return old
}

// Append adds an item at the end, taking ownership of v.
func (a *Array) Append(v Value) {
	if v == nil {
		panic("value: nil array item")
	}
	a.Items = append(a.Items, v)
}

func (o *Object) Len() int {
	return len(o.Entries)
}

func (a *Array) Len() int {
	return len(a.Items)
}
