package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Cache is a string key-value store with per-entry expiry. Implementations
// must report a missing or expired key as ErrKeyNotFound.
type Cache interface {
	Set(ctx context.Context, key string, value string, expiry time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// SetTyped stores value under key as JSON.
func SetTyped[T any](ctx context.Context, c Cache, key string, value T, expiry time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return ErrMarshal
	}
	return c.Set(ctx, key, string(data), expiry)
}

// GetTyped loads the JSON value stored under key into a T.
func GetTyped[T any](ctx context.Context, c Cache, key string) (T, error) {
	var result T

	value, err := c.Get(ctx, key)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return result, ErrUnmarshal
	}
	return result, nil
}
