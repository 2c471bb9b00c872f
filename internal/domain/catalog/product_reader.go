package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductReader is the read side of the catalog.
type ProductReader interface {
	// FindByID returns shared.ErrNotFound when the product does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindByIDs returns the products that exist among ids, in no particular
	// order. Missing ids are silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
}

// IndexByID maps products by id.
func IndexByID(products []Product) map[uuid.UUID]Product {
	index := make(map[uuid.UUID]Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}
