package encode

import (
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jed/internal/value"
)

// YAML writes v as a YAML document. Object key order is preserved.
func YAML(w io.Writer, v value.Value) error {
	payload, err := yaml.Marshal(toYAML(v))
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	_, err = w.Write(payload)
	return err
}

func toYAML(v value.Value) any {
	switch v := v.(type) {
	case *value.Object:
		out := make(yaml.MapSlice, 0, len(v.Entries))
		for _, e := range v.Entries {
			out = append(out, yaml.MapItem{Key: e.Key, Value: toYAML(e.Value)})
		}
		return out
	case *value.Array:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = toYAML(item)
		}
		return out
	case value.String:
		return string(v)
	case value.Number:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	case value.Bool:
		return bool(v)
	default:
		return nil
	}
}
