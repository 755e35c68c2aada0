package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "session", ttl), mr
}

func TestCreateAndResolve(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	// 32 random bytes base64 raw-url encoded
	assert.Len(t, token, 43)

	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokensAreUnique(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, seen[token], "token issued twice")
		seen[token] = true
	}
}

func TestResolveUnknownToken(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, err := store.Resolve(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = store.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestDestroyThenResolve(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))
	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestDestroyIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	assert.NoError(t, store.Destroy(ctx, token))
	assert.NoError(t, store.Destroy(ctx, token))
	assert.NoError(t, store.Destroy(ctx, "never-issued"))
}

func TestSessionExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestConcurrentCreates(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	tokens := make([]string, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token, err := store.Create(ctx, "user-1")
			assert.NoError(t, err)
			tokens[i] = token
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, token := range tokens {
		assert.False(t, seen[token])
		seen[token] = true

		userID, err := store.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	}
}
