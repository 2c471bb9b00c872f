package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecommerce/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ManagedStore is a Store with a lifecycle.
type ManagedStore interface {
	Store
	Ping(ctx context.Context) error
	Close() error
}

// StoreFactory creates cart stores based on configuration
type StoreFactory struct {
	redisConfig           config.RedisConfig
	keyPrefix             string
	opTimeout             time.Duration
	logger                *zap.Logger
	allowInMemoryFallback bool
	onFallback            func()
}

// StoreFactoryOption is a functional option for configuring the factory
type StoreFactoryOption func(*StoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to in-memory store when Redis is unavailable
func WithInMemoryFallback(allow bool) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// WithStoreKeyPrefix sets the key prefix used by the Redis store.
func WithStoreKeyPrefix(prefix string) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.keyPrefix = prefix
	}
}

// WithStoreOperationTimeout bounds every Redis call.
func WithStoreOperationTimeout(d time.Duration) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.opTimeout = d
	}
}

// WithFallbackHook registers a callback run when the factory falls back.
func WithFallbackHook(fn func()) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.onFallback = fn
	}
}

// NewStoreFactory creates a new factory
func NewStoreFactory(cfg config.RedisConfig, opts ...StoreFactoryOption) *StoreFactory {
	f := &StoreFactory{
		redisConfig: cfg,
		opTimeout:   DefaultOperationTimeout,
		logger:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisStore creates a Redis-backed store
func (f *StoreFactory) CreateRedisStore() (*RedisStore, error) {
	redisCfg := RedisConfig{
		Host:         f.redisConfig.Host,
		Port:         f.redisConfig.Port,
		Password:     f.redisConfig.Password,
		DB:           f.redisConfig.DB,
		PoolSize:     f.redisConfig.PoolSize,
		DialTimeout:  f.redisConfig.DialTimeout,
		ReadTimeout:  f.redisConfig.ReadTimeout,
		WriteTimeout: f.redisConfig.WriteTimeout,
	}

	store, err := NewRedisStore(redisCfg, WithKeyPrefix(f.keyPrefix), WithOperationTimeout(f.opTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis store: %w", err)
	}

	return store, nil
}

// CreateStore tries Redis first and, when allowed, falls back to an
// in-memory store. Carts held in memory are lost on restart and are not
// shared between instances.
func (f *StoreFactory) CreateStore() (ManagedStore, error) {
	store, err := f.CreateRedisStore()
	if err == nil {
		f.logger.Info("using Redis cart store",
			zap.String("host", f.redisConfig.Host),
			zap.Int("port", f.redisConfig.Port),
		)
		return store, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for cart storage but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory cart store. "+
		"Carts will not survive a restart or be shared between instances.",
		zap.Error(err),
	)
	if f.onFallback != nil {
		f.onFallback()
	}
	return NewInMemoryStore(0), nil
}
