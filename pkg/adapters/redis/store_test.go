package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JangRuBin2/rulang/pkg/adapters/redis"
	"github.com/JangRuBin2/rulang/pkg/ports/tests"
	"github.com/JangRuBin2/rulang/pkg/value"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStoreContract(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	tests.StoreContractTest(t, store)
}

func TestRedisStoreTTLExpiration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session-ttl", value.NewString("bar")))

	keys, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, keys, "session-ttl")

	mr.FastForward(2 * time.Second)

	_, ok, err := store.Get(ctx, "session-ttl")
	require.NoError(t, err)
	assert.False(t, ok)

	keys, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestRedisStorePrefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "my-session", value.NewString("start")))

	assert.True(t, mr.Exists("custom:app:my-session"))
	assert.True(t, mr.Exists("custom:app:index"))

	keys, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, keys, "my-session")
}
