package cache

import (
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ecommerce/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableRedis() config.RedisConfig {
	return config.RedisConfig{
		Host:        "127.0.0.1",
		Port:        1,
		DialTimeout: 100 * time.Millisecond,
	}
}

func TestStoreFactory_CreateStore(t *testing.T) {
	t.Run("uses Redis when reachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		port, err := strconv.Atoi(mr.Port())
		require.NoError(t, err)

		f := NewStoreFactory(config.RedisConfig{Host: mr.Host(), Port: port})
		store, err := f.CreateStore()
		require.NoError(t, err)
		defer store.Close()

		_, ok := store.(*RedisStore)
		assert.True(t, ok)
	})

	t.Run("falls back to memory when allowed", func(t *testing.T) {
		fallbacks := 0
		f := NewStoreFactory(unreachableRedis(),
			WithInMemoryFallback(true),
			WithFallbackHook(func() { fallbacks++ }),
		)
		store, err := f.CreateStore()
		require.NoError(t, err)
		defer store.Close()

		_, ok := store.(*InMemoryStore)
		assert.True(t, ok)
		assert.Equal(t, 1, fallbacks)
	})

	t.Run("fails when fallback disabled", func(t *testing.T) {
		f := NewStoreFactory(unreachableRedis(), WithInMemoryFallback(false))
		_, err := f.CreateStore()
		assert.Error(t, err)
	})
}
