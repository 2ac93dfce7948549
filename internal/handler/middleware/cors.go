package middleware

import (
	"log/slog"
	"slices"

	"care-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the browser policy for the booking widget.
// A "*" origin opens the API to any site; bearer tokens still gate every
// booking route, but cookies are never honoured in that mode.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	policy := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  cfg.AllowHeaders,
		ExposeHeaders: cfg.ExposeHeaders,
		MaxAge:        cfg.MaxAge,
	}

	if slices.Contains(cfg.AllowOrigins, "*") {
		policy.AllowAllOrigins = true
		if cfg.AllowCredentials {
			slog.Warn("CORS credentials disabled for wildcard origin")
		}
	} else {
		policy.AllowOrigins = cfg.AllowOrigins
		policy.AllowCredentials = cfg.AllowCredentials
	}

	slog.Info("CORS policy loaded",
		"origins", cfg.AllowOrigins,
		"any_origin", policy.AllowAllOrigins,
		"credentials", policy.AllowCredentials,
	)
	return cors.New(policy)
}
