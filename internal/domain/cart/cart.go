// Package cart holds the shopping cart aggregate.
//
// A cart is persisted as a whole after every mutation. There is no version
// token on the stored snapshot, so two concurrent read-modify-write cycles on
// the same cart resolve as last write wins.
package cart

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the aggregate root: one per owner key.
type Cart struct {
	UserID       string
	Items        []CartItem
	LastModified time.Time
}

// NewCart creates an empty cart for userID.
func NewCart(userID string) (*Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}
	return &Cart{
		UserID:       userID,
		Items:        []CartItem{},
		LastModified: time.Now().UTC(),
	}, nil
}

// TotalAmount returns Σ price × quantity over all items.
func (c *Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// TotalItems returns Σ quantity over all items.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total = addQuantity(total, item.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// FindItem returns the item with the given identity, or nil.
func (c *Cart) FindItem(productID uuid.UUID, attrs Attributes) *CartItem {
	if idx := c.indexOf(productID, attrs); idx >= 0 {
		return &c.Items[idx]
	}
	return nil
}

// ProductIDs returns the distinct product ids referenced by the cart.
func (c *Cart) ProductIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(c.Items))
	ids := make([]uuid.UUID, 0, len(c.Items))
	for _, item := range c.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// AddItem adds quantity units of a product. An existing line with the same
// identity is increased and its snapshot refreshed; otherwise a new line is
// appended.
func (c *Cart) AddItem(productID uuid.UUID, attrs Attributes, quantity int, snap Snapshot) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Product ID is required")
	}
	if quantity < 1 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be at least 1")
	}

	if item := c.FindItem(productID, attrs); item != nil {
		if item.Quantity > math.MaxInt-quantity {
			return shared.NewDomainError("INVALID_INPUT", "Quantity is too large")
		}
		item.Quantity += quantity
		item.applySnapshot(snap)
	} else {
		item := CartItem{
			ProductID:  productID,
			Quantity:   quantity,
			Attributes: attrs.Clone(),
		}
		item.applySnapshot(snap)
		c.Items = append(c.Items, item)
	}
	c.touch()
	return nil
}

// SetQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line. It returns shared.ErrNotFound when no line matches.
func (c *Cart) SetQuantity(productID uuid.UUID, attrs Attributes, quantity int) error {
	idx := c.indexOf(productID, attrs)
	if idx < 0 {
		return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Product %s is not in the cart.", productID))
	}
	if quantity <= 0 {
		c.removeAt(idx)
	} else {
		c.Items[idx].Quantity = quantity
	}
	c.touch()
	return nil
}

// RemoveItem removes the matching line and reports whether one was removed.
func (c *Cart) RemoveItem(productID uuid.UUID, attrs Attributes) bool {
	idx := c.indexOf(productID, attrs)
	if idx < 0 {
		return false
	}
	c.removeAt(idx)
	c.touch()
	return true
}

// MergeFrom folds every item of source into c. Matching lines have their
// quantities summed, saturating at math.MaxInt, and take the source
// snapshot; other lines are copied.
// Merging a cart into itself does nothing.
func (c *Cart) MergeFrom(source *Cart) {
	if source == nil || source == c || source.UserID == c.UserID {
		return
	}
	for _, src := range source.Items {
		if src.Quantity < 1 {
			continue
		}
		if item := c.FindItem(src.ProductID, src.Attributes); item != nil {
			item.Quantity = addQuantity(item.Quantity, src.Quantity)
			item.applySnapshot(Snapshot{Name: src.ProductName, ImageURL: src.ImageURL, Price: src.Price})
			continue
		}
		copied := src
		copied.Attributes = src.Attributes.Clone()
		c.Items = append(c.Items, copied)
	}
	c.touch()
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() *Cart {
	out := &Cart{
		UserID:       c.UserID,
		Items:        make([]CartItem, len(c.Items)),
		LastModified: c.LastModified,
	}
	for i, item := range c.Items {
		item.Attributes = item.Attributes.Clone()
		out.Items[i] = item
	}
	return out
}

func (c *Cart) indexOf(productID uuid.UUID, attrs Attributes) int {
	for i := range c.Items {
		if c.Items[i].Matches(productID, attrs) {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(idx int) {
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

func (c *Cart) touch() {
	c.LastModified = time.Now().UTC()
}

// addQuantity sums two positive quantities, saturating at math.MaxInt.
func addQuantity(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
