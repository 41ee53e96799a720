package engine

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Level files come from both encoding/json (float64 numbers) and yaml.v3 (int
// or float64), so numeric props are read through these helpers.

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func toFloat(v any) (float32, bool) {
	f, ok := toFloat64(v)
	return float32(f), ok
}

// PropFloat reads a number, returning def when the key is absent.
func PropFloat(props map[string]any, key string, def float32) (float32, error) {
	v, ok := props[key]
	if !ok {
		return def, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("prop %q: expected number, got %T", key, v)
	}
	return f, nil
}

func PropBool(props map[string]any, key string, def bool) (bool, error) {
	v, ok := props[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("prop %q: expected bool, got %T", key, v)
	}
	return b, nil
}

// PropUint32 reads a bitmask. Negative or fractional values are rejected.
func PropUint32(props map[string]any, key string, def uint32) (uint32, error) {
	v, ok := props[key]
	if !ok {
		return def, nil
	}
	f, ok := toFloat64(v)
	if !ok || f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
		return 0, fmt.Errorf("prop %q: expected unsigned integer, got %v", key, v)
	}
	return uint32(f), nil
}

// PropVec3 reads a three element list.
func PropVec3(props map[string]any, key string, def rl.Vector3) (rl.Vector3, error) {
	v, ok := props[key]
	if !ok {
		return def, nil
	}
	list, ok := v.([]any)
	if !ok || len(list) != 3 {
		return rl.Vector3{}, fmt.Errorf("prop %q: expected [x, y, z]", key)
	}
	var out [3]float32
	for i, item := range list {
		f, ok := toFloat(item)
		if !ok {
			return rl.Vector3{}, fmt.Errorf("prop %q[%d]: expected number, got %T", key, i, item)
		}
		out[i] = f
	}
	return rl.Vector3{X: out[0], Y: out[1], Z: out[2]}, nil
}
