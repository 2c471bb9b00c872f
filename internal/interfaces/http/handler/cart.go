package handler

import (
	"net/http"
	"time"

	cartapp "github.com/ecommerce/backend/internal/application/cart"
	"github.com/ecommerce/backend/internal/domain/cart"
	"github.com/ecommerce/backend/internal/interfaces/http/dto"
	"github.com/ecommerce/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgOwnerRequired = "A bearer token or a valid X-Guest-ID header is required."
	msgLoginRequired = "Sign in to merge a guest cart."
)

// CartHandler serves the cart endpoints
type CartHandler struct {
	BaseHandler
	service *cartapp.Service
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(service *cartapp.Service) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes mounts the cart routes under rg
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	carts := rg.Group("/cart")
	carts.GET("", h.GetCart)
	carts.HEAD("", h.CartExists)
	carts.DELETE("", h.ClearCart)
	carts.POST("/items", h.AddItem)
	carts.PUT("/items/:product_id", h.UpdateItem)
	carts.DELETE("/items/:product_id", h.RemoveItem)
	carts.PUT("/expiration", h.SetExpiration)
	carts.POST("/merge", h.Merge)
}

// owner resolves the cart owner: the authenticated user, else the guest
// session. It writes a 401 when neither is present.
func (h *CartHandler) owner(c *gin.Context) (string, bool) {
	if userID := middleware.GetJWTUserID(c); userID != "" {
		return userID, true
	}
	if guestID, err := uuid.Parse(c.GetHeader(middleware.GuestIDHeader)); err == nil && guestID != uuid.Nil {
		return cart.GuestOwnerID(guestID), true
	}
	h.Unauthorized(c, msgOwnerRequired)
	return "", false
}

// GetCart godoc
// @Summary      Get the cart
// @Description  Returns the caller's cart with per-item availability. An absent cart is returned empty.
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        X-Guest-ID header string false "Guest session id (UUID), used when no bearer token is sent"
// @Success      200 {object} dto.Response{data=cartapp.CartResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	writeResult(h, c, h.service.GetCart(c.Request.Context(), owner))
}

// CartExists godoc
// @Summary      Check whether a cart exists
// @Description  Answers 200 when the caller has a stored cart and 404 otherwise, without a body.
// @Tags         cart
// @Security     BearerAuth
// @Param        X-Guest-ID header string false "Guest session id (UUID), used when no bearer token is sent"
// @Success      200
// @Failure      401
// @Failure      404
// @Failure      500
// @Router       /cart [head]
func (h *CartHandler) CartExists(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	res := h.service.CartExists(c.Request.Context(), owner)
	switch {
	case !res.IsOK():
		c.Status(statusOf(res.Kind))
	case res.Data:
		c.Status(http.StatusOK)
	default:
		c.Status(http.StatusNotFound)
	}
}

// AddItem godoc
// @Summary      Add an item to the cart
// @Description  Adds units of a catalog product. Repeating a product and attribute set increases the quantity.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Guest-ID header string false "Guest session id (UUID), used when no bearer token is sent"
// @Param        request body dto.AddCartItemRequest true "Item to add"
// @Success      200 {object} dto.Response{data=cartapp.CartResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	var req dto.AddCartItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	productID, ok := h.parseUUID(c, req.ProductID, "product_id")
	if !ok {
		return
	}
	writeResult(h, c, h.service.AddToCart(c.Request.Context(), owner, cartapp.AddItemInput{
		ProductID:  productID,
		Quantity:   req.Quantity,
		Attributes: req.Attributes,
	}))
}

// UpdateItem godoc
// @Summary      Update an item quantity
// @Description  Sets the quantity of a cart line. A quantity of zero or less removes it.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Guest-ID header string false "Guest session id (UUID), used when no bearer token is sent"
// @Param        product_id path string true "Product ID" format(uuid)
// @Param        request body dto.UpdateCartItemRequest true "New quantity"
// @Success      200 {object} dto.Response{data=cartapp.CartResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /cart/items/{product_id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	var uri dto.ProductIDRequest
	if !h.BindURI(c, &uri) {
		return
	}
	productID, ok := h.parseUUID(c, uri.ProductID, "product_id")
	if !ok {
		return
	}
	var req dto.UpdateCartItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	writeResult(h, c, h.service.UpdateCartItem(c.Request.Context(), owner, cartapp.UpdateItemInput{
		ProductID:  productID,
		Quantity:   *req.Quantity,
		Attributes: req.Attributes,
	}))
}

// RemoveItem godoc
// @Summary      Remove an item from the cart
// @Description  Removes a cart line. The optional body names the line's attributes. Removing a missing line succeeds.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Guest-ID header string false "Guest session id (UUID), used when no bearer token is sent"
// @Param        product_id path string true "Product ID" format(uuid)
// @Param        request body dto.RemoveCartItemRequest false "Line attributes"
// @Success      200 {object} dto.Response{data=cartapp.CartResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	var uri dto.ProductIDRequest
	if !h.BindURI(c, &uri) {
		return
	}
	productID, ok := h.parseUUID(c, uri.ProductID, "product_id")
	if !ok {
		return
	}
	var req dto.RemoveCartItemRequest
	if c.Request.ContentLength > 0 && !h.BindJSON(c, &req) {
		return
	}
	writeResult(h, c, h.service.RemoveFromCart(c.Request.Context(), owner, productID, req.Attributes))
}

// ClearCart godoc
// @Summary      Clear the cart
// @Description  Deletes the caller's cart.
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        X-Guest-ID header string false "Guest session id (UUID), used when no bearer token is sent"
// @Success      200 {object} dto.Response
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	writeResult(h, c, h.service.ClearCart(c.Request.Context(), owner))
}

// SetExpiration godoc
// @Summary      Set the cart expiration
// @Description  Replaces the time to live of the caller's cart.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Guest-ID header string false "Guest session id (UUID), used when no bearer token is sent"
// @Param        request body dto.SetExpirationRequest true "Time to live in seconds"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /cart/expiration [put]
func (h *CartHandler) SetExpiration(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}
	var req dto.SetExpirationRequest
	if !h.BindJSON(c, &req) {
		return
	}
	ttl := time.Duration(req.TTLSeconds) * time.Second
	writeResult(h, c, h.service.SetCartExpiration(c.Request.Context(), owner, ttl))
}

// Merge godoc
// @Summary      Merge a guest cart
// @Description  Folds the guest cart named in the body into the signed-in caller's cart and deletes the guest cart.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.MergeCartRequest true "Guest session"
// @Success      200 {object} dto.Response{data=cartapp.CartResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /cart/merge [post]
func (h *CartHandler) Merge(c *gin.Context) {
	userID := middleware.GetJWTUserID(c)
	if userID == "" {
		h.Unauthorized(c, msgLoginRequired)
		return
	}
	var req dto.MergeCartRequest
	if !h.BindJSON(c, &req) {
		return
	}
	guestID, ok := h.parseUUID(c, req.GuestID, "guest_id")
	if !ok {
		return
	}
	writeResult(h, c, h.service.MergeCarts(c.Request.Context(), cart.GuestOwnerID(guestID), userID))
}

// parseUUID parses an id already checked by the uuid binding tag and
// writes a 400 if it still does not parse.
func (h *CartHandler) parseUUID(c *gin.Context, raw, field string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		h.BadRequest(c, "Invalid "+field+": must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func writeResult[T any](h *CartHandler, c *gin.Context, res cartapp.Result[T]) {
	if res.IsOK() {
		h.Success(c, res.Data, res.Message)
		return
	}
	h.Error(c, statusOf(res.Kind), codeOf(res.Kind), res.Message)
}

func statusOf(kind cartapp.Kind) int {
	return dto.GetHTTPStatus(codeOf(kind))
}

func codeOf(kind cartapp.Kind) string {
	switch kind {
	case cartapp.KindBadRequest:
		return dto.ErrCodeBadRequest
	case cartapp.KindUnauthorized:
		return dto.ErrCodeUnauthorized
	case cartapp.KindNotFound:
		return dto.ErrCodeNotFound
	default:
		return dto.ErrCodeInternal
	}
}
