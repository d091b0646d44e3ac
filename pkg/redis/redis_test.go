package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (IRedis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWithClient(client), mr
}

func TestAnswerCache_SetGet(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetAnswer(ctx, "chat:answer:g1:banana", "help", time.Minute))

	val, ok, err := cache.GetAnswer(ctx, "chat:answer:g1:banana")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "help", val)
	assert.Equal(t, time.Minute, mr.TTL("chat:answer:g1:banana"))
}

func TestAnswerCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	val, ok, err := cache.GetAnswer(context.Background(), "chat:answer:g1:missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestAnswerCache_Expiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetAnswer(ctx, "k", "v", time.Second))
	mr.FastForward(2 * time.Second)

	_, ok, err := cache.GetAnswer(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnswerCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	_, ok, err := cache.GetAnswer(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNew_WithoutAddress(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "")
	assert.Nil(t, New())
}
