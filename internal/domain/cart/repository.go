package cart

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrCartNotFound is returned when no usable cart is stored for a user,
	// including when the stored payload could not be decoded.
	ErrCartNotFound = errors.New("cart not found")
	// ErrStorageUnavailable is returned when the backing store failed.
	ErrStorageUnavailable = errors.New("cart storage unavailable")
	// ErrInvalidTTL is returned for a non-positive expiration.
	ErrInvalidTTL = errors.New("cart ttl must be positive")
)

// Repository persists whole cart snapshots keyed by user id.
type Repository interface {
	Get(ctx context.Context, userID string) (*Cart, error)
	// Save stores the cart and resets its sliding expiration window.
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, userID string) error
	Exists(ctx context.Context, userID string) (bool, error)
	// UpdateExpiration rewrites the stored cart with a new TTL.
	UpdateExpiration(ctx context.Context, userID string, ttl time.Duration) error
}
