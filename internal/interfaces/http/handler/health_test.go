package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecommerce/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func serveHealth(t *testing.T, components map[string]Pinger) (int, dto.HealthResponse) {
	t.Helper()

	router := gin.New()
	NewHealthHandler("cart-service", components).RegisterRoutes(&router.RouterGroup)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHealth_AllComponentsUp(t *testing.T) {
	ok := pingerFunc(func(context.Context) error { return nil })

	code, resp := serveHealth(t, map[string]Pinger{"redis": ok, "database": ok})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "cart-service", resp.Service)
	assert.Equal(t, map[string]string{"redis": "ok", "database": "ok"}, resp.Components)
}

func TestHealth_ComponentDown(t *testing.T) {
	ok := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })

	code, resp := serveHealth(t, map[string]Pinger{"redis": down, "database": ok})

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "error", resp.Components["redis"])
	assert.Equal(t, "ok", resp.Components["database"])
}
