package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecommerce/backend/internal/domain/catalog"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/ecommerce/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductReader implements catalog.ProductReader against the products
// table. Only active, non-deleted products are visible.
type GormProductReader struct {
	db *gorm.DB
}

// NewGormProductReader creates a new GormProductReader
func NewGormProductReader(db *gorm.DB) *GormProductReader {
	return &GormProductReader{db: db}
}

func (r *GormProductReader) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.ProductModel{})
}

// FindByID finds an active product by its ID
func (r *GormProductReader) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	err := r.active(ctx).
		Where("id = ?", id).
		Where("status = ?", string(catalog.ProductStatusActive)).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", id, err)
	}
	return model.ToDomain(), nil
}

// FindByIDs loads every active product among ids with a single query.
func (r *GormProductReader) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}

	var rows []models.ProductModel
	err := r.active(ctx).
		Where("id IN ?", ids).
		Where("status = ?", string(catalog.ProductStatusActive)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	products := make([]catalog.Product, 0, len(rows))
	for i := range rows {
		products = append(products, *rows[i].ToDomain())
	}
	return products, nil
}

var _ catalog.ProductReader = (*GormProductReader)(nil)
