// Package cart implements the shopping cart use cases.
//
// Every mutating operation is a full read-modify-write of the stored cart.
// No lock or version check guards that cycle, so concurrent writes for the
// same user resolve as last write wins.
package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecommerce/backend/internal/domain/cart"
	"github.com/ecommerce/backend/internal/domain/catalog"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/ecommerce/backend/internal/infrastructure/logger"
	"github.com/ecommerce/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	msgUserRequired       = "User ID is required."
	msgCartNotFound       = "Cart not found."
	msgStorageUnavailable = "Cart storage is temporarily unavailable. Please try again."
	msgCatalogUnavailable = "Product catalog is temporarily unavailable. Please try again."
)

// Metrics receives cart operation measurements.
type Metrics interface {
	RecordOperation(ctx context.Context, operation, outcome string, duration time.Duration)
	RecordItemsAdded(ctx context.Context, quantity int)
	RecordMerge(ctx context.Context, mergedItems int)
}

type noopMetrics struct{}

func (noopMetrics) RecordOperation(context.Context, string, string, time.Duration) {}
func (noopMetrics) RecordItemsAdded(context.Context, int)                          {}
func (noopMetrics) RecordMerge(context.Context, int)                               {}

// Service orchestrates cart use cases over the cart repository and the
// product catalog.
type Service struct {
	repo    cart.Repository
	catalog catalog.ProductReader
	logger  *zap.Logger
	metrics Metrics
	reads   singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewService creates a cart service. It panics when a collaborator is nil.
func NewService(repo cart.Repository, products catalog.ProductReader, opts ...Option) *Service {
	if repo == nil {
		panic("cart: NewService called with nil repository")
	}
	if products == nil {
		panic("cart: NewService called with nil product reader")
	}
	s := &Service{
		repo:    repo,
		catalog: products,
		logger:  zap.NewNop(),
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("cart_service")
	return s
}

// GetCart returns the cart of userID. A user without a stored cart gets an
// empty cart that is not persisted. Concurrent reads for the same user
// share one repository round-trip.
func (s *Service) GetCart(ctx context.Context, userID string) (res Result[*CartResponse]) {
	ctx, span := telemetry.StartServiceSpan(ctx, "cart", "get_cart")
	defer s.observe(ctx, span, "get_cart", time.Now(), &res.Kind)

	userID, ok := normalizeUserID(userID)
	if !ok {
		return Failed[*CartResponse](KindBadRequest, msgUserRequired)
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrUserID, userID)

	v, _, _ := s.reads.Do(userID, func() (any, error) {
		return s.loadCartView(context.WithoutCancel(ctx), userID), nil
	})
	return v.(Result[*CartResponse])
}

func (s *Service) loadCartView(ctx context.Context, userID string) Result[*CartResponse] {
	c, err := s.repo.Get(ctx, userID)
	if errors.Is(err, cart.ErrCartNotFound) {
		return Ok(emptyCartResponse(userID), "Empty cart retrieved successfully.")
	}
	if err != nil {
		return storageFailure[*CartResponse](ctx, s, "get cart", userID, err)
	}

	resp := ToCartResponse(c)
	if ids := c.ProductIDs(); len(ids) > 0 {
		products, err := s.catalog.FindByIDs(ctx, ids)
		if err != nil {
			logger.WithLogger(ctx, s.logger).Warn("catalog lookup failed, returning cart without availability",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		} else {
			resp.withAvailability(catalog.IndexByID(products))
		}
	}
	return Ok(resp, "Cart retrieved successfully.")
}

// AddToCart adds quantity units of a product. Adding a product that is
// already in the cart increases its quantity and refreshes the price, name
// and image from the catalog.
func (s *Service) AddToCart(ctx context.Context, userID string, in AddItemInput) (res Result[*CartResponse]) {
	ctx, span := telemetry.StartServiceSpan(ctx, "cart", "add_to_cart")
	defer s.observe(ctx, span, "add_to_cart", time.Now(), &res.Kind)

	userID, ok := normalizeUserID(userID)
	if !ok {
		return Failed[*CartResponse](KindBadRequest, msgUserRequired)
	}
	if in.ProductID == uuid.Nil {
		return Failed[*CartResponse](KindBadRequest, "Product ID is required.")
	}
	if in.Quantity < 1 {
		return Failed[*CartResponse](KindBadRequest, "Quantity must be at least 1.")
	}
	telemetry.SetAttributes(span,
		telemetry.SpanAttrUserID, userID,
		telemetry.SpanAttrProductID, in.ProductID.String(),
		telemetry.SpanAttrQuantity, in.Quantity,
	)

	product, fail, ok := s.findProduct(ctx, in.ProductID)
	if !ok {
		return Failed[*CartResponse](fail.kind, fail.message)
	}

	c, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return storageFailure[*CartResponse](ctx, s, "load cart", userID, err)
	}

	attrs := cart.NewAttributes(in.Attributes)
	if existing := c.FindItem(in.ProductID, attrs); existing != nil {
		// compare against the remaining stock so the sum cannot overflow
		remaining := max(product.Stock-existing.Quantity, 0)
		if in.Quantity > remaining {
			return Failed[*CartResponse](KindBadRequest,
				fmt.Sprintf("Insufficient stock. Only %d more units available.", remaining))
		}
	} else if !product.HasStock(in.Quantity) {
		return Failed[*CartResponse](KindBadRequest,
			fmt.Sprintf("Insufficient stock. Only %d units available.", product.Stock))
	}

	if err := c.AddItem(in.ProductID, attrs, in.Quantity, snapshotOf(product)); err != nil {
		return Failed[*CartResponse](KindBadRequest, err.Error())
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return storageFailure[*CartResponse](ctx, s, "save cart", userID, err)
	}

	s.metrics.RecordItemsAdded(ctx, in.Quantity)
	return Ok(ToCartResponse(c), "Item added to cart successfully.")
}

// UpdateCartItem sets the quantity of a line. A quantity of zero or less
// removes the line. The stored price snapshot is kept as it is.
func (s *Service) UpdateCartItem(ctx context.Context, userID string, in UpdateItemInput) (res Result[*CartResponse]) {
	ctx, span := telemetry.StartServiceSpan(ctx, "cart", "update_cart_item")
	defer s.observe(ctx, span, "update_cart_item", time.Now(), &res.Kind)

	userID, ok := normalizeUserID(userID)
	if !ok {
		return Failed[*CartResponse](KindBadRequest, msgUserRequired)
	}
	if in.ProductID == uuid.Nil {
		return Failed[*CartResponse](KindBadRequest, "Product ID is required.")
	}
	telemetry.SetAttributes(span,
		telemetry.SpanAttrUserID, userID,
		telemetry.SpanAttrProductID, in.ProductID.String(),
		telemetry.SpanAttrQuantity, in.Quantity,
	)

	c, err := s.repo.Get(ctx, userID)
	if errors.Is(err, cart.ErrCartNotFound) {
		return Failed[*CartResponse](KindNotFound, msgCartNotFound)
	}
	if err != nil {
		return storageFailure[*CartResponse](ctx, s, "load cart", userID, err)
	}
	if c.IsEmpty() {
		return Failed[*CartResponse](KindNotFound, msgCartNotFound)
	}

	attrs := cart.NewAttributes(in.Attributes)
	if c.FindItem(in.ProductID, attrs) == nil {
		return Failed[*CartResponse](KindNotFound, fmt.Sprintf("Product %s not found in cart.", in.ProductID))
	}

	message := "Cart item updated successfully."
	if in.Quantity > 0 {
		product, fail, ok := s.findProduct(ctx, in.ProductID)
		if !ok {
			if fail.kind == KindNotFound {
				return Failed[*CartResponse](KindBadRequest, fmt.Sprintf("Product %s is no longer available.", in.ProductID))
			}
			return Failed[*CartResponse](fail.kind, fail.message)
		}
		if !product.HasStock(in.Quantity) {
			return Failed[*CartResponse](KindBadRequest,
				fmt.Sprintf("Insufficient stock. Only %d units available.", product.Stock))
		}
	} else {
		message = "Item removed from cart successfully."
	}

	if err := c.SetQuantity(in.ProductID, attrs, in.Quantity); err != nil {
		return Failed[*CartResponse](KindNotFound, err.Error())
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return storageFailure[*CartResponse](ctx, s, "save cart", userID, err)
	}
	return Ok(ToCartResponse(c), message)
}

// RemoveFromCart removes a line. Removing a line that is not in the cart,
// or from a cart that does not exist, succeeds without writing anything.
func (s *Service) RemoveFromCart(ctx context.Context, userID string, productID uuid.UUID, attributes map[string]string) (res Result[*CartResponse]) {
	ctx, span := telemetry.StartServiceSpan(ctx, "cart", "remove_from_cart")
	defer s.observe(ctx, span, "remove_from_cart", time.Now(), &res.Kind)

	userID, ok := normalizeUserID(userID)
	if !ok {
		return Failed[*CartResponse](KindBadRequest, msgUserRequired)
	}
	telemetry.SetAttributes(span,
		telemetry.SpanAttrUserID, userID,
		telemetry.SpanAttrProductID, productID.String(),
	)

	c, err := s.repo.Get(ctx, userID)
	if errors.Is(err, cart.ErrCartNotFound) {
		return Ok(emptyCartResponse(userID), "Item was not in the cart.")
	}
	if err != nil {
		return storageFailure[*CartResponse](ctx, s, "load cart", userID, err)
	}

	if !c.RemoveItem(productID, cart.NewAttributes(attributes)) {
		return Ok(ToCartResponse(c), "Item was not in the cart.")
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return storageFailure[*CartResponse](ctx, s, "save cart", userID, err)
	}
	return Ok(ToCartResponse(c), "Item removed from cart successfully.")
}

// ClearCart deletes the cart. Clearing a cart that does not exist is
// reported as not found.
func (s *Service) ClearCart(ctx context.Context, userID string) (res Result[bool]) {
	ctx, span := telemetry.StartServiceSpan(ctx, "cart", "clear_cart")
	defer s.observe(ctx, span, "clear_cart", time.Now(), &res.Kind)

	userID, ok := normalizeUserID(userID)
	if !ok {
		return Failed[bool](KindBadRequest, msgUserRequired)
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrUserID, userID)

	err := s.repo.Delete(ctx, userID)
	if errors.Is(err, cart.ErrCartNotFound) {
		return Failed[bool](KindNotFound, msgCartNotFound)
	}
	if err != nil {
		return storageFailure[bool](ctx, s, "delete cart", userID, err)
	}
	return Ok(true, "Cart cleared successfully.")
}

// ExpirationResponse describes a new cart expiration.
type ExpirationResponse struct {
	UserID    string    `json:"user_id"`
	TTL       int64     `json:"ttl_seconds"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SetCartExpiration rewrites the cart with a new time to live.
func (s *Service) SetCartExpiration(ctx context.Context, userID string, ttl time.Duration) (res Result[*ExpirationResponse]) {
	ctx, span := telemetry.StartServiceSpan(ctx, "cart", "set_cart_expiration")
	defer s.observe(ctx, span, "set_cart_expiration", time.Now(), &res.Kind)

	userID, ok := normalizeUserID(userID)
	if !ok {
		return Failed[*ExpirationResponse](KindBadRequest, msgUserRequired)
	}
	if ttl <= 0 {
		return Failed[*ExpirationResponse](KindBadRequest, "Expiration time must be positive.")
	}
	telemetry.SetAttributes(span,
		telemetry.SpanAttrUserID, userID,
		"cart.ttl_seconds", int64(ttl/time.Second),
	)

	err := s.repo.UpdateExpiration(ctx, userID, ttl)
	switch {
	case errors.Is(err, cart.ErrCartNotFound):
		return Failed[*ExpirationResponse](KindNotFound, msgCartNotFound)
	case errors.Is(err, cart.ErrInvalidTTL):
		return Failed[*ExpirationResponse](KindBadRequest, "Expiration time must be positive.")
	case err != nil:
		return storageFailure[*ExpirationResponse](ctx, s, "update cart expiration", userID, err)
	}

	return Ok(&ExpirationResponse{
		UserID:    userID,
		TTL:       int64(ttl / time.Second),
		ExpiresAt: time.Now().UTC().Add(ttl),
	}, "Cart expiration updated successfully.")
}

// MergeCarts folds the source cart (usually a guest cart) into the target
// cart. Matching lines have their quantities summed and take the source
// snapshot. The source is deleted only after the target was saved, so a
// failed save loses nothing.
func (s *Service) MergeCarts(ctx context.Context, sourceUserID, targetUserID string) (res Result[*CartResponse]) {
	ctx, span := telemetry.StartServiceSpan(ctx, "cart", "merge_carts")
	defer s.observe(ctx, span, "merge_carts", time.Now(), &res.Kind)

	sourceUserID, okSource := normalizeUserID(sourceUserID)
	targetUserID, okTarget := normalizeUserID(targetUserID)
	if !okSource || !okTarget {
		return Failed[*CartResponse](KindBadRequest, "Source and target user IDs are required.")
	}
	telemetry.SetAttributes(span,
		"cart.source_user_id", sourceUserID,
		"cart.target_user_id", targetUserID,
	)

	if sourceUserID == targetUserID {
		return s.targetView(ctx, targetUserID, "Nothing to merge.")
	}

	source, err := s.repo.Get(ctx, sourceUserID)
	if errors.Is(err, cart.ErrCartNotFound) {
		return s.targetView(ctx, targetUserID, "Nothing to merge.")
	}
	if err != nil {
		return storageFailure[*CartResponse](ctx, s, "load source cart", sourceUserID, err)
	}
	if source.IsEmpty() {
		return s.targetView(ctx, targetUserID, "Nothing to merge.")
	}

	target, err := s.loadOrCreate(ctx, targetUserID)
	if err != nil {
		return storageFailure[*CartResponse](ctx, s, "load target cart", targetUserID, err)
	}

	target.MergeFrom(source)

	if err := s.repo.Save(ctx, target); err != nil {
		return storageFailure[*CartResponse](ctx, s, "save merged cart", targetUserID, err)
	}

	if err := s.repo.Delete(ctx, sourceUserID); err != nil && !errors.Is(err, cart.ErrCartNotFound) {
		logger.WithLogger(ctx, s.logger).Error("merged cart saved but source cart could not be deleted",
			zap.String("source_user_id", sourceUserID),
			zap.String("target_user_id", targetUserID),
			zap.Error(err),
		)
	}

	s.metrics.RecordMerge(ctx, len(source.Items))
	return Ok(ToCartResponse(target), "Carts merged successfully.")
}

// CartExists reports whether a cart is stored for userID.
func (s *Service) CartExists(ctx context.Context, userID string) (res Result[bool]) {
	ctx, span := telemetry.StartServiceSpan(ctx, "cart", "cart_exists")
	defer s.observe(ctx, span, "cart_exists", time.Now(), &res.Kind)

	userID, ok := normalizeUserID(userID)
	if !ok {
		return Failed[bool](KindBadRequest, msgUserRequired)
	}

	exists, err := s.repo.Exists(ctx, userID)
	if err != nil {
		return storageFailure[bool](ctx, s, "check cart", userID, err)
	}
	if !exists {
		return Ok(false, msgCartNotFound)
	}
	return Ok(true, "Cart exists.")
}

func (s *Service) targetView(ctx context.Context, userID, message string) Result[*CartResponse] {
	c, err := s.repo.Get(ctx, userID)
	if errors.Is(err, cart.ErrCartNotFound) {
		return Ok(emptyCartResponse(userID), message)
	}
	if err != nil {
		return storageFailure[*CartResponse](ctx, s, "load cart", userID, err)
	}
	return Ok(ToCartResponse(c), message)
}

func (s *Service) loadOrCreate(ctx context.Context, userID string) (*cart.Cart, error) {
	c, err := s.repo.Get(ctx, userID)
	if errors.Is(err, cart.ErrCartNotFound) {
		return cart.NewCart(userID)
	}
	return c, err
}

type failure struct {
	kind    Kind
	message string
}

func (s *Service) findProduct(ctx context.Context, productID uuid.UUID) (*catalog.Product, failure, bool) {
	product, err := s.catalog.FindByID(ctx, productID)
	if errors.Is(err, shared.ErrNotFound) || (err == nil && product == nil) {
		return nil, failure{KindNotFound, fmt.Sprintf("Product with ID %s not found.", productID)}, false
	}
	if err != nil {
		logger.WithLogger(ctx, s.logger).Error("catalog lookup failed",
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
		return nil, failure{KindInternal, msgCatalogUnavailable}, false
	}
	return product, failure{}, true
}

// observe ends the span and records the outcome of an operation.
func (s *Service) observe(ctx context.Context, span trace.Span, operation string, start time.Time, kind *Kind) {
	outcome := kind.String()
	telemetry.SetAttribute(span, telemetry.SpanAttrOutcome, outcome)
	if *kind == KindInternal {
		telemetry.RecordError(span, errors.New(operation+" failed"))
	}
	span.End()
	s.metrics.RecordOperation(ctx, operation, outcome, time.Since(start))
}

func storageFailure[T any](ctx context.Context, s *Service, action, userID string, err error) Result[T] {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && !errors.Is(err, cart.ErrStorageUnavailable) {
		return Failed[T](KindBadRequest, domainErr.Message)
	}
	logger.WithLogger(ctx, s.logger).Error("cart storage failure",
		zap.String("action", action),
		zap.String("user_id", userID),
		zap.Error(err),
	)
	return Failed[T](KindInternal, msgStorageUnavailable)
}

func snapshotOf(p *catalog.Product) cart.Snapshot {
	return cart.Snapshot{Name: p.Name, ImageURL: p.ImageURL, Price: p.Price}
}

func normalizeUserID(userID string) (string, bool) {
	userID = strings.TrimSpace(userID)
	return userID, userID != ""
}
