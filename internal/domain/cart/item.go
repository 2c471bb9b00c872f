package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemKey identifies a line item within a cart.
type ItemKey struct {
	ProductID  uuid.UUID
	Attributes string
}

// CartItem is a line item owned by a Cart. Price, ProductName and ImageURL
// are snapshots copied from the catalog when the item was added or refreshed.
type CartItem struct {
	ProductID   uuid.UUID
	ProductName string
	ImageURL    string
	Price       decimal.Decimal
	Quantity    int
	Attributes  Attributes
}

// Snapshot carries the catalog fields copied into a cart item.
type Snapshot struct {
	Name     string
	ImageURL string
	Price    decimal.Decimal
}

// Key returns the identity key of the item.
func (i CartItem) Key() ItemKey {
	return NewItemKey(i.ProductID, i.Attributes)
}

// NewItemKey builds an identity key from a product id and variant attributes.
func NewItemKey(productID uuid.UUID, attrs Attributes) ItemKey {
	return ItemKey{ProductID: productID, Attributes: attrs.Key()}
}

// TotalPrice returns price × quantity.
func (i CartItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Matches reports whether the item has the given identity.
func (i CartItem) Matches(productID uuid.UUID, attrs Attributes) bool {
	return i.ProductID == productID && i.Attributes.Equal(attrs)
}

func (i *CartItem) applySnapshot(s Snapshot) {
	i.ProductName = s.Name
	i.ImageURL = s.ImageURL
	i.Price = s.Price
}
