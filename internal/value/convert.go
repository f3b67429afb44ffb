package value

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/jacoelho/jed/internal/number"
)

// ErrUnsupportedType indicates a Go value with no JSON counterpart.
var ErrUnsupportedType = errors.New("unsupported type")

// ToAny converts v to the plain Go representation used by encoding/json:
// map[string]any, []any, string, float64, bool and nil. Duplicate keys keep
// the first occurrence, matching path lookups.
func ToAny(v Value) any {
	switch v := v.(type) {
	case *Object:
		out := make(map[string]any, len(v.Entries))
		for _, e := range v.Entries {
			if _, seen := out[e.Key]; seen {
				continue
			}
			out[e.Key] = ToAny(e.Value)
		}
		return out
	case *Array:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = ToAny(item)
		}
		return out
	case String:
		return string(v)
	case Number:
		return float64(v)
	case Bool:
		return bool(v)
	default:
		return nil
	}
}

// FromAny builds a tree from plain Go values. Map keys are sorted because Go
// maps carry no order.
func FromAny(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return Clone(x), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		obj := NewObject()
		for _, k := range keys {
			child, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			obj.Append(k, child)
		}
		return obj, nil
	case []any:
		arr := NewArray()
		for _, item := range x {
			child, err := FromAny(item)
			if err != nil {
				return nil, err
			}
			arr.Append(child)
		}
		return arr, nil
	}

	if f, ok := number.ToFloat64(x); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: non-finite number %v", ErrUnsupportedType, f)
		}
		return Number(f), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
}
