package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rbaliev/dfakit/internal/adapters/redis"
	"github.com/rbaliev/dfakit/pkg/ports"
	"github.com/rbaliev/dfakit/pkg/urlgrammar"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunAutomatonStoreContract(t, store)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()
	grammar := urlgrammar.New()
	id := grammar.Fingerprint()

	require.NoError(t, store.Save(ctx, id, grammar))

	// After the TTL passes the value is gone.
	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, id)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()
	grammar := urlgrammar.New()

	require.NoError(t, store.Save(ctx, "g", grammar))
	assert.True(t, mr.Exists("custom:g"))
}
