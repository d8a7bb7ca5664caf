package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_MemoryStoreWindow(t *testing.T) {
	limiter := NewLimiter(NewMemoryStore(), 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 3, res.Limit)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)

	// Another key keeps its own window.
	res, err = limiter.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestMemoryStore_WindowResetsAfterExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	count, _, err := store.Hit(ctx, "k", time.Nanosecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	time.Sleep(5 * time.Millisecond)

	count, _, err = store.Hit(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

type failingStore struct{}

func (failingStore) Hit(context.Context, string, time.Duration) (int64, time.Time, error) {
	return 0, time.Time{}, errors.New("store down")
}

func TestLimiter_AllowsOnStoreFailure(t *testing.T) {
	limiter := NewLimiter(failingStore{}, 5, time.Minute)

	res, err := limiter.Allow(context.Background(), "1.2.3.4")
	assert.Error(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 5, res.Remaining)
}

func TestRedisStore_CountsAndExpires(t *testing.T) {
	srv := miniredis.RunT(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	ctx := context.Background()

	count, resetAt, err := store.Hit(ctx, "9.9.9.9", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.WithinDuration(t, time.Now().Add(time.Minute), resetAt, 5*time.Second)

	count, _, err = store.Hit(ctx, "9.9.9.9", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	srv.FastForward(2 * time.Minute)

	count, _, err = store.Hit(ctx, "9.9.9.9", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisStore_SharedAcrossClients(t *testing.T) {
	srv := miniredis.RunT(t)
	a := NewRedisStore(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	b := NewRedisStore(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	ctx := context.Background()

	_, _, err := a.Hit(ctx, "shared", time.Minute)
	require.NoError(t, err)

	count, _, err := b.Hit(ctx, "shared", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
