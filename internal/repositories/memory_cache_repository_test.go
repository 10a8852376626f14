package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheRepository()

	require.NoError(t, cache.Set(ctx, "intake_state:1", `{"step":"companyName"}`, 0))

	value, err := cache.Get(ctx, "intake_state:1")
	require.NoError(t, err)
	assert.Equal(t, `{"step":"companyName"}`, value)
}

func TestMemoryCache_MissingKey(t *testing.T) {
	cache := NewMemoryCacheRepository()

	_, err := cache.Get(context.Background(), "intake_state:404")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Expiration(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheRepository()

	require.NoError(t, cache.Set(ctx, "key", "value", 10*time.Millisecond))

	value, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	time.Sleep(20 * time.Millisecond)

	_, err = cache.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Del(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheRepository()

	require.NoError(t, cache.Set(ctx, "a", "1", 0))
	require.NoError(t, cache.Set(ctx, "b", "2", 0))
	require.NoError(t, cache.Del(ctx, "a", "b"))

	_, err := cache.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = cache.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Overwrite(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheRepository()

	require.NoError(t, cache.Set(ctx, "key", "old", 0))
	require.NoError(t, cache.Set(ctx, "key", "new", 0))

	value, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "new", value)
}
