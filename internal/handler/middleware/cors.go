package middleware

import (
	"log/slog"
	"slices"

	"client-scheduler/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS layer from config. The token cookies only
// travel on credentialed requests, and gin-contrib/cors refuses a wildcard
// origin together with credentials, so that combination is downgraded here
// instead of panicking at startup.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowCredentials := cfg.AllowCredentials
	if allowCredentials && slices.Contains(cfg.AllowOrigins, "*") {
		slog.Warn("wildcard CORS origin cannot be credentialed, disabling credentials",
			"allow_origins", cfg.AllowOrigins)
		allowCredentials = false
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
