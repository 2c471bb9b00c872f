package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecommerce/backend/internal/domain/cart"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/ecommerce/backend/internal/infrastructure/cache"
	"github.com/ecommerce/backend/internal/infrastructure/config"
	"github.com/ecommerce/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
)

// CacheCartRepository stores cart snapshots in a cache.Store.
// Every Save resets the sliding TTL of the cart.
type CacheCartRepository struct {
	store     cache.Store
	keyPrefix string
	ttl       time.Duration
	logger    *zap.Logger
}

// NewCacheCartRepository creates a cart repository over store.
func NewCacheCartRepository(store cache.Store, cfg config.CartConfig, logger *zap.Logger) *CacheCartRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := cfg.DefaultTTL()
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "cart:"
	}
	return &CacheCartRepository{
		store:     store,
		keyPrefix: prefix,
		ttl:       ttl,
		logger:    logger.Named("cart_repository"),
	}
}

func (r *CacheCartRepository) key(userID string) string {
	return r.keyPrefix + userID
}

// TTL returns the sliding expiration applied by Save.
func (r *CacheCartRepository) TTL() time.Duration {
	return r.ttl
}

// Get loads the cart for userID. A payload that cannot be decoded is logged
// and reported as cart.ErrCartNotFound, so a corrupt entry reads as an empty
// cart and is overwritten by the next save.
func (r *CacheCartRepository) Get(ctx context.Context, userID string) (*cart.Cart, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	data, err := r.store.Get(ctx, r.key(userID))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, storageError("get", userID, err)
	}

	var snapshot models.CartSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		r.logger.Warn("discarding undecodable cart snapshot",
			zap.String("user_id", userID),
			zap.Int("payload_bytes", len(data)),
			zap.Error(err),
		)
		return nil, cart.ErrCartNotFound
	}

	c := snapshot.ToDomain(userID)
	if c.UserID != userID {
		r.logger.Warn("cart snapshot owner mismatch, using key owner",
			zap.String("user_id", userID),
			zap.String("stored_user_id", c.UserID),
		)
		c.UserID = userID
	}
	return c, nil
}

// Save stores the cart with the configured sliding TTL.
func (r *CacheCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	return r.save(ctx, c, r.ttl)
}

func (r *CacheCartRepository) save(ctx context.Context, c *cart.Cart, ttl time.Duration) error {
	if c == nil {
		return shared.NewDomainError("INVALID_INPUT", "Cart is required")
	}
	if err := validateUserID(c.UserID); err != nil {
		return err
	}

	data, err := json.Marshal(models.NewCartSnapshot(c))
	if err != nil {
		return fmt.Errorf("failed to encode cart %s: %w", c.UserID, err)
	}

	if err := r.store.Set(ctx, r.key(c.UserID), data, ttl); err != nil {
		return storageError("save", c.UserID, err)
	}
	return nil
}

// Delete removes the cart. It returns cart.ErrCartNotFound when there was
// nothing to delete.
func (r *CacheCartRepository) Delete(ctx context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}

	deleted, err := r.store.Delete(ctx, r.key(userID))
	if err != nil {
		return storageError("delete", userID, err)
	}
	if !deleted {
		return cart.ErrCartNotFound
	}
	return nil
}

// Exists reports whether a cart is stored for userID.
func (r *CacheCartRepository) Exists(ctx context.Context, userID string) (bool, error) {
	if err := validateUserID(userID); err != nil {
		return false, err
	}

	ok, err := r.store.Exists(ctx, r.key(userID))
	if err != nil {
		return false, storageError("exists", userID, err)
	}
	return ok, nil
}

// UpdateExpiration re-reads the cart and stores it again with ttl. The
// read and the write are separate calls, so a concurrent Save between them
// is overwritten.
func (r *CacheCartRepository) UpdateExpiration(ctx context.Context, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		return cart.ErrInvalidTTL
	}

	c, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}
	return r.save(ctx, c, ttl)
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}
	return nil
}

func storageError(op, userID string, err error) error {
	return fmt.Errorf("cart %s for %s: %w", op, userID, errors.Join(cart.ErrStorageUnavailable, err))
}

var _ cart.Repository = (*CacheCartRepository)(nil)
