//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"care-booking/internal/handler/middleware"
	"care-booking/internal/pkg/config"
	"care-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/api/v1/bookings", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func preflight(r *gin.Engine, origin string) *nethttptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodOptions, "/api/v1/bookings", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	return httptestRecorder(r, req)
}

func TestCORS(t *testing.T) {
	base := config.CORSConfig{
		AllowOrigins:     []string{"https://app.example.com"},
		AllowMethods:     []string{"GET", "POST", "PATCH"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	t.Run("success: listed origin with credentials", func(t *testing.T) {
		rec := preflight(corsRouter(base), "https://app.example.com")
		httptest.AssertHeaders(t, rec, map[string]string{
			"Access-Control-Allow-Origin":      "https://app.example.com",
			"Access-Control-Allow-Credentials": "true",
			"Access-Control-Max-Age":           "3600",
		})
	})

	t.Run("error: unlisted origin is refused", func(t *testing.T) {
		rec := preflight(corsRouter(base), "https://evil.example.com")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		httptest.AssertHeaders(t, rec, map[string]string{"Access-Control-Allow-Origin": ""})
	})

	t.Run("success: wildcard drops credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*"}
		rec := preflight(corsRouter(cfg), "https://partner.example.org")
		httptest.AssertHeaders(t, rec, map[string]string{
			"Access-Control-Allow-Origin":      "*",
			"Access-Control-Allow-Credentials": "",
		})
	})
}
