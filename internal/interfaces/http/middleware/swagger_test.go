package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSwaggerRouter(cfg SwaggerConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	// stands in for OptionalJWTAuth
	router.Use(func(c *gin.Context) {
		if user := c.GetHeader("X-Test-User"); user != "" {
			c.Set(JWTUserIDKey, user)
		}
		c.Next()
	})
	router.GET("/swagger/*any", SwaggerProtection(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})
	return router
}

func TestSwaggerProtection(t *testing.T) {
	tests := []struct {
		name       string
		cfg        SwaggerConfig
		remoteAddr string
		user       string
		wantStatus int
	}{
		{name: "disabled", cfg: SwaggerConfig{Enabled: false}, wantStatus: http.StatusNotFound},
		{name: "open", cfg: SwaggerConfig{Enabled: true}, wantStatus: http.StatusOK},
		{name: "auth required without token", cfg: SwaggerConfig{Enabled: true, RequireAuth: true}, wantStatus: http.StatusUnauthorized},
		{name: "auth required with token", cfg: SwaggerConfig{Enabled: true, RequireAuth: true}, user: "user-1", wantStatus: http.StatusOK},
		{name: "exact ip allowed", cfg: SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.7"}}, remoteAddr: "10.0.0.7:5000", wantStatus: http.StatusOK},
		{name: "cidr allowed", cfg: SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.1.0.0/16"}}, remoteAddr: "10.1.4.2:5000", wantStatus: http.StatusOK},
		{name: "ip outside list", cfg: SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.1.0.0/16", "bogus"}}, remoteAddr: "192.0.2.9:5000", wantStatus: http.StatusForbidden},
		{name: "ip allowed but token missing", cfg: SwaggerConfig{Enabled: true, RequireAuth: true, AllowedIPs: []string{"10.0.0.7"}}, remoteAddr: "10.0.0.7:5000", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			if tt.user != "" {
				req.Header.Set("X-Test-User", tt.user)
			}
			w := httptest.NewRecorder()
			newSwaggerRouter(tt.cfg).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "docs", w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}
