package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/coocood/freecache"
)

type freeCache struct {
	cache *freecache.Cache
}

// NewFreeCache wraps an in-process freecache instance. Sizes are in bytes;
// 32MB is plenty for upstream response payloads.
func NewFreeCache(cache *freecache.Cache) Cache {
	return &freeCache{cache: cache}
}

func (c *freeCache) Set(ctx context.Context, key string, value string, expiry time.Duration) error {
	ttlSeconds := int(expiry.Seconds())
	if ttlSeconds <= 0 {
		ttlSeconds = 0 // No expiry
	}

	if err := c.cache.Set([]byte(key), []byte(value), ttlSeconds); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (c *freeCache) Get(ctx context.Context, key string) (string, error) {
	data, err := c.cache.Get([]byte(key))
	if err != nil {
		if err == freecache.ErrNotFound {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return string(data), nil
}

func (c *freeCache) Delete(ctx context.Context, key string) error {
	c.cache.Del([]byte(key))
	return nil
}

func (c *freeCache) Clear(ctx context.Context) error {
	c.cache.Clear()
	return nil
}
