package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires Redis on localhost:6379; skipped otherwise.
const testRedisAddr = "localhost:6379"

func setupTestClient(t *testing.T, prefix string) *RedisClient {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	rc := NewFromClient(client, prefix)
	t.Cleanup(func() {
		_ = rc.DeletePrefix(context.Background(), "")
		_ = rc.Close()
	})
	return rc
}

func TestRedisClient_SetGet(t *testing.T) {
	rc := setupTestClient(t, "test:storefront:setget:")
	ctx := context.Background()

	_, found, err := rc.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, rc.Set(ctx, "k", []byte(`{"a":1}`), time.Minute))

	data, found, err := rc.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"a":1}`, string(data))
}

func TestRedisClient_DeletePrefix(t *testing.T) {
	rc := setupTestClient(t, "test:storefront:prefix:")
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "products:1", []byte("1"), time.Minute))
	require.NoError(t, rc.Set(ctx, "products:2", []byte("2"), time.Minute))
	require.NoError(t, rc.Set(ctx, "settings", []byte("3"), time.Minute))

	require.NoError(t, rc.DeletePrefix(ctx, "products:"))

	_, found, _ := rc.Get(ctx, "products:1")
	assert.False(t, found)
	_, found, _ = rc.Get(ctx, "settings")
	assert.True(t, found)
}
