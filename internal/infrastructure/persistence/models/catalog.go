package models

import (
	"github.com/ecommerce/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model of a catalog product.
// The table is owned by the catalog service; this service only reads it.
type ProductModel struct {
	BaseModel
	Name     string                `gorm:"type:varchar(200);not null"`
	Price    decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Stock    int                   `gorm:"not null;default:0"`
	ImageURL string                `gorm:"column:image_url;type:varchar(500)"`
	Status   catalog.ProductStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a catalog Product.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		ID:       m.ID,
		Name:     m.Name,
		Price:    m.Price,
		Stock:    m.Stock,
		ImageURL: m.ImageURL,
		Status:   m.Status,
	}
}
