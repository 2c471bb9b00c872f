package models

import (
	"time"

	"github.com/ecommerce/backend/internal/domain/cart"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartSchemaVersion is written into every stored snapshot.
const CartSchemaVersion = 1

// CartSnapshot is the JSON document stored per cart.
//
// Field names are snake_case and optional fields are omitted when empty.
// Decoding ignores unknown fields and defaults missing ones, so snapshots
// written by older or newer versions remain readable.
type CartSnapshot struct {
	SchemaVersion int                `json:"schema_version"`
	UserID        string             `json:"user_id"`
	Items         []CartItemSnapshot `json:"items"`
	LastModified  time.Time          `json:"last_modified"`
}

// CartItemSnapshot is the stored form of a line item.
type CartItemSnapshot struct {
	ProductID   uuid.UUID         `json:"product_id"`
	ProductName string            `json:"product_name,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
	Price       decimal.Decimal   `json:"price"`
	Quantity    int               `json:"quantity"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// NewCartSnapshot converts a domain cart into its stored form.
func NewCartSnapshot(c *cart.Cart) *CartSnapshot {
	s := &CartSnapshot{
		SchemaVersion: CartSchemaVersion,
		UserID:        c.UserID,
		Items:         make([]CartItemSnapshot, 0, len(c.Items)),
		LastModified:  c.LastModified.UTC(),
	}
	for _, item := range c.Items {
		s.Items = append(s.Items, CartItemSnapshot{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ImageURL:    item.ImageURL,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Attributes:  item.Attributes.Map(),
		})
	}
	return s
}

// ToDomain converts the snapshot back into a cart. Malformed lines (nil
// product id, non-positive quantity) are dropped and duplicate lines are
// folded together.
func (s *CartSnapshot) ToDomain(fallbackUserID string) *cart.Cart {
	userID := s.UserID
	if userID == "" {
		userID = fallbackUserID
	}
	c := &cart.Cart{
		UserID:       userID,
		Items:        make([]cart.CartItem, 0, len(s.Items)),
		LastModified: s.LastModified,
	}
	for _, item := range s.Items {
		if item.ProductID == uuid.Nil || item.Quantity < 1 {
			continue
		}
		attrs := cart.NewAttributes(item.Attributes)
		if existing := c.FindItem(item.ProductID, attrs); existing != nil {
			existing.Quantity += item.Quantity
			continue
		}
		c.Items = append(c.Items, cart.CartItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ImageURL:    item.ImageURL,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Attributes:  attrs,
		})
	}
	return c
}
