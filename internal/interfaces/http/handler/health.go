package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/ecommerce/backend/internal/infrastructure/logger"
	"github.com/ecommerce/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves GET /health
type HealthHandler struct {
	service    string
	components map[string]Pinger
	timeout    time.Duration
}

// NewHealthHandler creates a health handler checking the given components
func NewHealthHandler(service string, components map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		service:    service,
		components: components,
		timeout:    2 * time.Second,
	}
}

// RegisterRoutes mounts /health on rg
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health godoc
// @Summary      Service health
// @Description  Pings the cart store and the catalog database. Served outside the /api/v1 prefix.
// @Tags         health
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Failure      503 {object} dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:     "healthy",
		Service:    h.service,
		Components: make(map[string]string, len(h.components)),
	}
	status := http.StatusOK

	for name, p := range h.components {
		if err := p.Ping(ctx); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed",
				zap.String("component", name),
				zap.Error(err),
			)
			resp.Components[name] = "error"
			resp.Status = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Components[name] = "ok"
	}

	c.JSON(status, resp)
}
