package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRedisCache(t *testing.T) Cache {
	t.Helper()
	mr := miniredis.RunT(t)

	c, cleanup, err := NewRedisCache(slog.Default(), mr.Addr(), 0)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return c
}

func TestRedisCache_SetGet(t *testing.T) {
	c := createTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "quote", "1.08", time.Minute))

	value, err := c.Get(ctx, "quote")
	require.NoError(t, err)
	assert.Equal(t, "1.08", value)

	_, err = c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisCache_DeleteAndClear(t *testing.T) {
	c := createTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, c.Delete(ctx, "a"))
	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, c.Set(ctx, "b", "2", time.Minute))
	require.NoError(t, c.Clear(ctx))
	_, err = c.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestNewRedisCache_ConnectFailure(t *testing.T) {
	_, _, err := NewRedisCache(slog.Default(), "127.0.0.1:1", 0)
	assert.Error(t, err)
}
