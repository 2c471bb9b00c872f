package dto

// AddCartItemRequest is the body of POST /cart/items.
// Quantities are capped at 10000 units per request.
type AddCartItemRequest struct {
	ProductID  string            `json:"product_id" binding:"required,uuid"`
	Quantity   int               `json:"quantity" binding:"required,min=1,max=10000"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// UpdateCartItemRequest is the body of PUT /cart/items/:product_id.
// A quantity of zero or less removes the line.
type UpdateCartItemRequest struct {
	Quantity   *int              `json:"quantity" binding:"required,max=10000"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// RemoveCartItemRequest is the optional body of DELETE /cart/items/:product_id.
type RemoveCartItemRequest struct {
	Attributes map[string]string `json:"attributes,omitempty"`
}

// SetExpirationRequest is the body of PUT /cart/expiration. The upper
// bound is the largest whole second a time.Duration can hold.
type SetExpirationRequest struct {
	TTLSeconds int64 `json:"ttl_seconds" binding:"required,gt=0,max=9223372036"`
}

// MergeCartRequest is the body of POST /cart/merge.
type MergeCartRequest struct {
	GuestID string `json:"guest_id" binding:"required,uuid"`
}

// ProductIDRequest binds the product_id path parameter.
type ProductIDRequest struct {
	ProductID string `uri:"product_id" binding:"required,uuid"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status     string            `json:"status"`
	Service    string            `json:"service"`
	Components map[string]string `json:"components"`
}
