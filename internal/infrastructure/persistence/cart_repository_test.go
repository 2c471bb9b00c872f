package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ecommerce/backend/internal/domain/cart"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/ecommerce/backend/internal/infrastructure/cache"
	"github.com/ecommerce/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore fails every call as an unreachable backend would.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, &cache.StoreError{Op: "get", Err: errors.New("dial tcp: connection refused")}
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return &cache.StoreError{Op: "set", Err: errors.New("dial tcp: connection refused")}
}

func (failingStore) Delete(context.Context, string) (bool, error) {
	return false, &cache.StoreError{Op: "delete", Err: errors.New("dial tcp: connection refused")}
}

func (failingStore) Exists(context.Context, string) (bool, error) {
	return false, &cache.StoreError{Op: "exists", Err: errors.New("dial tcp: connection refused")}
}

func newRedisCartRepository(t *testing.T) (*CacheCartRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := cache.NewRedisStoreWithClient(client)
	return NewCacheCartRepository(store, config.CartConfig{DefaultTTLDays: 30, KeyPrefix: "cart:"}, nil), mr
}

func sampleCart(t *testing.T, userID string) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(userID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(uuid.New(), nil, 2, cart.Snapshot{Name: "Mug", Price: decimal.RequireFromString("7.25")}))
	return c
}

func TestCacheCartRepository_SaveAndGet(t *testing.T) {
	repo, mr := newRedisCartRepository(t)
	ctx := context.Background()

	c := sampleCart(t, "u1")
	require.NoError(t, repo.Save(ctx, c))

	assert.True(t, mr.Exists("cart:u1"))
	assert.Equal(t, 30*24*time.Hour, mr.TTL("cart:u1"))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.TotalItems())
	assert.True(t, decimal.RequireFromString("14.5").Equal(got.TotalAmount()))
}

func TestCacheCartRepository_SlidingTTL(t *testing.T) {
	repo, mr := newRedisCartRepository(t)
	ctx := context.Background()

	c := sampleCart(t, "u1")
	require.NoError(t, repo.Save(ctx, c))
	mr.FastForward(10 * 24 * time.Hour)
	assert.Equal(t, 20*24*time.Hour, mr.TTL("cart:u1"))

	require.NoError(t, repo.Save(ctx, c))
	assert.Equal(t, 30*24*time.Hour, mr.TTL("cart:u1"))
}

func TestCacheCartRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("absent cart", func(t *testing.T) {
		repo, _ := newRedisCartRepository(t)
		_, err := repo.Get(ctx, "nobody")
		assert.ErrorIs(t, err, cart.ErrCartNotFound)
	})

	t.Run("corrupt payload degrades to absent", func(t *testing.T) {
		repo, mr := newRedisCartRepository(t)
		require.NoError(t, mr.Set("cart:u1", "{not json"))

		_, err := repo.Get(ctx, "u1")
		assert.ErrorIs(t, err, cart.ErrCartNotFound)
		assert.False(t, errors.Is(err, cart.ErrStorageUnavailable))
	})

	t.Run("payload from a newer schema is readable", func(t *testing.T) {
		repo, mr := newRedisCartRepository(t)
		pid := uuid.New()
		require.NoError(t, mr.Set("cart:u1", `{"schema_version":2,"user_id":"u1","currency":"EUR","items":[{"product_id":"`+pid.String()+`","price":"3","quantity":4,"note":"x"}]}`))

		got, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 4, got.TotalItems())
	})

	t.Run("blank user id is invalid input", func(t *testing.T) {
		repo, _ := newRedisCartRepository(t)
		_, err := repo.Get(ctx, " ")
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}

func TestCacheCartRepository_DeleteExists(t *testing.T) {
	repo, _ := newRedisCartRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleCart(t, "u1")))

	ok, err := repo.Exists(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, "u1"))
	assert.ErrorIs(t, repo.Delete(ctx, "u1"), cart.ErrCartNotFound)

	ok, err = repo.Exists(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheCartRepository_UpdateExpiration(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites with the new ttl", func(t *testing.T) {
		repo, mr := newRedisCartRepository(t)
		require.NoError(t, repo.Save(ctx, sampleCart(t, "u1")))

		require.NoError(t, repo.UpdateExpiration(ctx, "u1", 2*time.Hour))
		assert.Equal(t, 2*time.Hour, mr.TTL("cart:u1"))

		got, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 2, got.TotalItems())
	})

	t.Run("absent cart is not found", func(t *testing.T) {
		repo, _ := newRedisCartRepository(t)
		assert.ErrorIs(t, repo.UpdateExpiration(ctx, "u1", time.Hour), cart.ErrCartNotFound)
	})

	t.Run("non-positive ttl is rejected", func(t *testing.T) {
		repo, _ := newRedisCartRepository(t)
		assert.ErrorIs(t, repo.UpdateExpiration(ctx, "u1", 0), cart.ErrInvalidTTL)
	})
}

func TestCacheCartRepository_StoreFailures(t *testing.T) {
	repo := NewCacheCartRepository(failingStore{}, config.CartConfig{DefaultTTLDays: 30}, nil)
	ctx := context.Background()

	_, err := repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, cart.ErrStorageUnavailable)
	assert.False(t, errors.Is(err, cart.ErrCartNotFound))

	assert.ErrorIs(t, repo.Save(ctx, sampleCart(t, "u1")), cart.ErrStorageUnavailable)
	assert.ErrorIs(t, repo.Delete(ctx, "u1"), cart.ErrStorageUnavailable)

	_, err = repo.Exists(ctx, "u1")
	assert.ErrorIs(t, err, cart.ErrStorageUnavailable)
	assert.ErrorIs(t, err, cache.ErrStoreUnavailable)
}

func TestCacheCartRepository_InMemoryStore(t *testing.T) {
	store := cache.NewInMemoryStore(time.Hour)
	defer store.Close()

	repo := NewCacheCartRepository(store, config.CartConfig{}, nil)
	assert.Equal(t, 30*24*time.Hour, repo.TTL())

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, sampleCart(t, "guest:abc")))
	assert.InDelta(t, float64(30*24*time.Hour), float64(store.TTL("cart:guest:abc")), float64(time.Second))
}
