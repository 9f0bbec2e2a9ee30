package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/pkg/config"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cfg := &config.Config{Redis: config.RedisConfig{Host: mr.Host(), Port: mr.Port()}}

	client, err := NewRedisClient(context.Background(), cfg)
	require.NoError(t, err)
	store := NewRedisStore(client, ttl)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_SetGet(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "runs/latest.json")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "runs/latest.json", []byte(`{"v":1}`)))
	got, ok, err := store.Get(ctx, "runs/latest.json")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"v":1}`), got)

	assert.True(t, mr.Exists(keyPrefix+"runs/latest.json"))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"runs/latest.json"))
}

func TestRedisStore_SetOverwrites(t *testing.T) {
	store, _ := newRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "doc", []byte("old")))
	require.NoError(t, store.Set(ctx, "doc", []byte("new")))

	got, ok, err := store.Get(ctx, "doc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "doc", []byte("x")))
	mr.FastForward(time.Minute + time.Second)

	_, ok, err := store.Get(ctx, "doc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	mr.Close()

	_, _, err := store.Get(context.Background(), "doc")
	assert.Error(t, err)
	assert.Error(t, store.Set(context.Background(), "doc", []byte("x")))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{Redis: config.RedisConfig{Host: mr.Host(), Port: mr.Port()}}
	mr.Close()

	_, err := NewRedisClient(context.Background(), cfg)
	assert.Error(t, err)
}
