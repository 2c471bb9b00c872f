package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	cartapp "github.com/ecommerce/backend/internal/application/cart"
	"github.com/ecommerce/backend/internal/domain/cart"
	"github.com/ecommerce/backend/internal/domain/catalog"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/ecommerce/backend/internal/infrastructure/auth"
	"github.com/ecommerce/backend/internal/infrastructure/cache"
	"github.com/ecommerce/backend/internal/infrastructure/config"
	"github.com/ecommerce/backend/internal/infrastructure/persistence"
	"github.com/ecommerce/backend/internal/interfaces/http/dto"
	"github.com/ecommerce/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret-at-least-32-chars"

func init() {
	gin.SetMode(gin.TestMode)
}

type stubCatalog struct {
	mu       sync.Mutex
	products map[uuid.UUID]catalog.Product
}

func newStubCatalog(products ...catalog.Product) *stubCatalog {
	s := &stubCatalog{products: map[uuid.UUID]catalog.Product{}}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *stubCatalog) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &p, nil
}

func (s *stubCatalog) FindByIDs(_ context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []catalog.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type testEnv struct {
	router  *gin.Engine
	store   *cache.InMemoryStore
	product catalog.Product
	guestID uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := cache.NewInMemoryStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	product := catalog.Product{
		ID:     uuid.New(),
		Name:   "Espresso Beans",
		Price:  decimal.RequireFromString("12.50"),
		Stock:  10,
		Status: catalog.ProductStatusActive,
	}

	repo := persistence.NewCacheCartRepository(store, config.CartConfig{DefaultTTLDays: 30, KeyPrefix: "cart:"}, nil)
	svc := cartapp.NewService(repo, newStubCatalog(product))
	jwtSvc := auth.NewJWTService(config.JWTConfig{Secret: testSecret})

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.OptionalJWTAuth(jwtSvc, nil))
	NewCartHandler(svc).RegisterRoutes(router.Group("/api/v1"))

	return &testEnv{router: router, store: store, product: product, guestID: uuid.New()}
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:    userID,
		TokenType: auth.TokenTypeAccess,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return middleware.BearerPrefix + token
}

type requestOpt func(*http.Request)

func asGuest(id uuid.UUID) requestOpt {
	return func(r *http.Request) { r.Header.Set(middleware.GuestIDHeader, id.String()) }
}

func asUser(t *testing.T, userID string) requestOpt {
	token := bearer(t, userID)
	return func(r *http.Request) { r.Header.Set(middleware.AuthHeaderKey, token) }
}

func (e *testEnv) do(method, path, body string, opts ...requestOpt) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type cartEnvelope struct {
	Success   bool                  `json:"success"`
	Data      *cartapp.CartResponse `json:"data"`
	Message   string                `json:"message"`
	Error     *dto.ErrorInfo        `json:"error"`
	RequestID string                `json:"request_id"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartEnvelope {
	t.Helper()
	var env cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func (e *testEnv) addBody(qty int) string {
	return `{"product_id":"` + e.product.ID.String() + `","quantity":` + strconv.Itoa(qty) + `}`
}

func TestCartHandler_RequiresOwner(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeCart(t, w)
	assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error.Code)
	assert.NotEmpty(t, resp.RequestID)

	w = env.do(http.MethodGet, "/api/v1/cart", "", func(r *http.Request) {
		r.Header.Set(middleware.GuestIDHeader, "not-a-uuid")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartHandler_GuestLifecycle(t *testing.T) {
	env := newTestEnv(t)
	guest := asGuest(env.guestID)

	w := env.do(http.MethodGet, "/api/v1/cart", "", guest)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeCart(t, w)
	assert.True(t, got.Success)
	assert.Empty(t, got.Data.Items)
	assert.Equal(t, cart.GuestOwnerID(env.guestID), got.Data.UserID)

	w = env.do(http.MethodHead, "/api/v1/cart", "", guest)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())

	w = env.do(http.MethodPost, "/api/v1/cart/items", env.addBody(2), guest)
	require.Equal(t, http.StatusOK, w.Code)
	got = decodeCart(t, w)
	assert.Equal(t, "Item added to cart successfully.", got.Message)
	require.Len(t, got.Data.Items, 1)
	assert.Equal(t, 2, got.Data.TotalItems)
	assert.True(t, decimal.RequireFromString("25").Equal(got.Data.TotalAmount))

	w = env.do(http.MethodHead, "/api/v1/cart", "", guest)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/v1/cart", "", guest)
	got = decodeCart(t, w)
	require.Len(t, got.Data.Items, 1)
	require.NotNil(t, got.Data.Items[0].Available)
	assert.True(t, *got.Data.Items[0].Available)
	assert.Equal(t, 10, *got.Data.Items[0].AvailableStock)

	path := "/api/v1/cart/items/" + env.product.ID.String()
	w = env.do(http.MethodPut, path, `{"quantity":5}`, guest)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decodeCart(t, w).Data.TotalItems)

	w = env.do(http.MethodDelete, path, "", guest)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Item removed from cart successfully.", decodeCart(t, w).Message)

	w = env.do(http.MethodDelete, "/api/v1/cart", "", guest)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodDelete, "/api/v1/cart", "", guest)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeCart(t, w).Error.Code)
}

func TestCartHandler_AddItem_Errors(t *testing.T) {
	env := newTestEnv(t)
	guest := asGuest(env.guestID)

	t.Run("validation", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"nope","quantity":0}`, guest)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decodeCart(t, w).Error.Code)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/cart/items", env.addBody(11), guest)
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeCart(t, w)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
		assert.Equal(t, "Insufficient stock. Only 10 units available.", resp.Error.Message)
	})

	t.Run("quantity above cap", func(t *testing.T) {
		require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/cart/items", env.addBody(1), guest).Code)

		body := `{"product_id":"` + env.product.ID.String() + `","quantity":9223372036854775807}`
		w := env.do(http.MethodPost, "/api/v1/cart/items", body, guest)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decodeCart(t, w).Error.Code)

		w = env.do(http.MethodGet, "/api/v1/cart", "", guest)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeCart(t, w)
		require.Len(t, resp.Data.Items, 1)
		assert.Equal(t, 1, resp.Data.Items[0].Quantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		body := `{"product_id":"` + uuid.NewString() + `","quantity":1}`
		w := env.do(http.MethodPost, "/api/v1/cart/items", body, guest)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, decodeCart(t, w).Error.Code)
	})
}

func TestCartHandler_UpdateItem_NotInCart(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPut, "/api/v1/cart/items/"+env.product.ID.String(), `{"quantity":1}`, asGuest(env.guestID))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodPut, "/api/v1/cart/items/not-a-uuid", `{"quantity":1}`, asGuest(env.guestID))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidation, decodeCart(t, w).Error.Code)

	w = env.do(http.MethodPut, "/api/v1/cart/items/"+env.product.ID.String(), `{}`, asGuest(env.guestID))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_SetExpiration(t *testing.T) {
	env := newTestEnv(t)
	user := asUser(t, "user-1")

	w := env.do(http.MethodPut, "/api/v1/cart/expiration", `{"ttl_seconds":3600}`, user)
	require.Equal(t, http.StatusNotFound, w.Code)

	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/cart/items", env.addBody(1), user).Code)

	w = env.do(http.MethodPut, "/api/v1/cart/expiration", `{"ttl_seconds":3600}`, user)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ttl_seconds":3600`)
	assert.InDelta(t, time.Hour.Seconds(), env.store.TTL("cart:user-1").Seconds(), 5)

	w = env.do(http.MethodPut, "/api/v1/cart/expiration", `{"ttl_seconds":0}`, user)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 18446744074s does not fit in a time.Duration and would wrap to ~290ms
	w = env.do(http.MethodPut, "/api/v1/cart/expiration", `{"ttl_seconds":18446744074}`, user)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidation, decodeCart(t, w).Error.Code)
	assert.InDelta(t, time.Hour.Seconds(), env.store.TTL("cart:user-1").Seconds(), 5)

	w = env.do(http.MethodPut, "/api/v1/cart/expiration", `{"ttl_seconds":9223372036}`, user)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartHandler_Merge(t *testing.T) {
	env := newTestEnv(t)
	guest := asGuest(env.guestID)
	user := asUser(t, "user-9")

	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/cart/items", env.addBody(2), guest).Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/v1/cart/items", env.addBody(1), user).Code)

	body := `{"guest_id":"` + env.guestID.String() + `"}`

	t.Run("requires authentication", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/cart/merge", body, guest)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("folds guest cart into user cart", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/cart/merge", body, user)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeCart(t, w)
		assert.Equal(t, "Carts merged successfully.", resp.Message)
		require.Len(t, resp.Data.Items, 1)
		assert.Equal(t, 3, resp.Data.Items[0].Quantity)

		w = env.do(http.MethodHead, "/api/v1/cart", "", guest)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("second merge is a no-op", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/cart/merge", body, user)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeCart(t, w)
		assert.Equal(t, "Nothing to merge.", resp.Message)
		assert.Equal(t, 3, resp.Data.TotalItems)
	})

	t.Run("validates guest id", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/cart/merge", `{"guest_id":"x"}`, user)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_ParseUUID(t *testing.T) {
	h := &CartHandler{}

	t.Run("valid", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		id := uuid.New()
		got, ok := h.parseUUID(c, id.String(), "product_id")
		require.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("invalid writes 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		_, ok := h.parseUUID(c, "not-a-uuid", "guest_id")
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid guest_id")
	})
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		kind   cartapp.Kind
		code   string
		status int
	}{
		{cartapp.KindBadRequest, dto.ErrCodeBadRequest, http.StatusBadRequest},
		{cartapp.KindUnauthorized, dto.ErrCodeUnauthorized, http.StatusUnauthorized},
		{cartapp.KindNotFound, dto.ErrCodeNotFound, http.StatusNotFound},
		{cartapp.KindInternal, dto.ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.code, codeOf(tt.kind))
			assert.Equal(t, tt.status, statusOf(tt.kind))
		})
	}
}
