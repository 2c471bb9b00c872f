package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore(t *testing.T) {
	store := NewInMemoryStore(time.Hour)
	defer store.Close()

	ctx := context.Background()

	t.Run("missing key is not found", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("stores a copy of the value", func(t *testing.T) {
		value := []byte("abc")
		require.NoError(t, store.Set(ctx, "k1", value, time.Hour))
		value[0] = 'z'

		got, err := store.Get(ctx, "k1")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(got))
	})

	t.Run("delete and exists", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k2", []byte("x"), time.Hour))

		ok, err := store.Exists(ctx, "k2")
		require.NoError(t, err)
		assert.True(t, ok)

		deleted, err := store.Delete(ctx, "k2")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = store.Delete(ctx, "k2")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("cancelled context is unavailable", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Get(cctx, "k1")
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestInMemoryStore_Expiry(t *testing.T) {
	store := NewInMemoryStore(time.Hour)
	defer store.Close()

	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("x"), time.Minute))
	assert.Equal(t, time.Minute, store.TTL("k"))

	now = now.Add(2 * time.Minute)

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	ok, err := store.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 1, store.Size())
	store.cleanup()
	assert.Equal(t, 0, store.Size())
}

func TestInMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewInMemoryStore(10 * time.Millisecond)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
