package cart

import (
	"time"

	"github.com/ecommerce/backend/internal/domain/cart"
	"github.com/ecommerce/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemInput is the input of AddToCart.
type AddItemInput struct {
	ProductID  uuid.UUID
	Quantity   int
	Attributes map[string]string
}

// UpdateItemInput is the input of UpdateCartItem.
type UpdateItemInput struct {
	ProductID  uuid.UUID
	Quantity   int
	Attributes map[string]string
}

// CartResponse is the read view of a cart. Totals are computed on every
// conversion and never read from storage.
type CartResponse struct {
	UserID       string             `json:"user_id"`
	Items        []CartItemResponse `json:"items"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	TotalItems   int                `json:"total_items"`
	LastModified *time.Time         `json:"last_modified,omitempty"`
}

// CartItemResponse is the read view of a line item.
type CartItemResponse struct {
	ProductID      uuid.UUID         `json:"product_id"`
	ProductName    string            `json:"product_name,omitempty"`
	ImageURL       string            `json:"image_url,omitempty"`
	Price          decimal.Decimal   `json:"price"`
	Quantity       int               `json:"quantity"`
	TotalPrice     decimal.Decimal   `json:"total_price"`
	Attributes     map[string]string `json:"attributes,omitempty"`
	Available      *bool             `json:"available,omitempty"`
	AvailableStock *int              `json:"available_stock,omitempty"`
}

// ToCartResponse converts a domain cart into its read view.
func ToCartResponse(c *cart.Cart) *CartResponse {
	resp := &CartResponse{
		UserID:      c.UserID,
		Items:       make([]CartItemResponse, 0, len(c.Items)),
		TotalAmount: c.TotalAmount(),
		TotalItems:  c.TotalItems(),
	}
	if !c.LastModified.IsZero() {
		lm := c.LastModified
		resp.LastModified = &lm
	}
	for _, item := range c.Items {
		resp.Items = append(resp.Items, CartItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ImageURL:    item.ImageURL,
			Price:       item.Price,
			Quantity:    item.Quantity,
			TotalPrice:  item.TotalPrice(),
			Attributes:  item.Attributes.Map(),
		})
	}
	return resp
}

// emptyCartResponse is the view of a cart that has never been written.
func emptyCartResponse(userID string) *CartResponse {
	return &CartResponse{
		UserID:      userID,
		Items:       []CartItemResponse{},
		TotalAmount: decimal.Zero,
	}
}

// withAvailability annotates items with live catalog stock. Items whose
// product is gone are marked unavailable.
func (r *CartResponse) withAvailability(products map[uuid.UUID]catalog.Product) *CartResponse {
	for i := range r.Items {
		item := &r.Items[i]
		p, ok := products[item.ProductID]
		stock := 0
		if ok {
			stock = p.Stock
		}
		available := ok && p.IsActive() && stock >= item.Quantity
		item.Available = &available
		item.AvailableStock = &stock
	}
	return r
}
