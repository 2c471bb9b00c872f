// Package catalog describes the read-only view of the product catalog that
// the cart consumes. The catalog itself is owned by another service.
package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Product is a point-in-time snapshot of a catalog entry.
type Product struct {
	ID       uuid.UUID
	Name     string
	Price    decimal.Decimal
	Stock    int
	ImageURL string
	Status   ProductStatus
}

// IsActive returns true if the product can be sold
func (p *Product) IsActive() bool {
	return p.Status == "" || p.Status == ProductStatusActive
}

// HasStock reports whether quantity units can be supplied.
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}
