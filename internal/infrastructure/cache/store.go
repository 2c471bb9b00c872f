package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrKeyNotFound is returned by Get when the key is not present.
	ErrKeyNotFound = errors.New("cache: key not found")
	// ErrStoreUnavailable matches every backend or network failure.
	ErrStoreUnavailable = errors.New("cache: store unavailable")
)

// Store is a TTL-capable key-value store.
// Every method may return an error matching ErrStoreUnavailable, which
// callers should treat as retryable. Absence is never reported that way.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete reports whether a key was removed.
	Delete(ctx context.Context, key string) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// StoreError describes a failed store operation.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("cache %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is makes every StoreError match ErrStoreUnavailable.
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

func unavailable(op, key string, err error) error {
	return &StoreError{Op: op, Key: key, Err: err}
}
