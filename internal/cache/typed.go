package cache

import (
	"context"
)

// GetTyped reads key and returns it as T. It accepts both values stored
// as-is (in-memory stores) and JSON payloads (redis). A payload that does not
// decode is reported as a miss.
func GetTyped[T any](ctx context.Context, c Cache, key string) (T, bool) {
	var zero T

	raw, ok := c.Get(ctx, key)
	if !ok || raw == nil {
		return zero, false
	}

	if typed, ok := raw.(T); ok {
		return typed, true
	}

	var data []byte
	switch v := raw.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return zero, false
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, false
	}
	return out, true
}
