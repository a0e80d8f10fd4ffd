package middleware

import (
	"log/slog"
	"slices"

	"badminton-club/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Clients read these from booking and court responses.
var requiredExposeHeaders = []string{"X-Request-ID", "Location"}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    withExposeHeaders(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	// Browsers refuse credentialed responses for a wildcard origin.
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		if corsCfg.AllowCredentials {
			slog.Warn("CORS credentials disabled for wildcard origin")
			corsCfg.AllowCredentials = false
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}

func withExposeHeaders(configured []string) []string {
	headers := slices.Clone(configured)
	for _, h := range requiredExposeHeaders {
		if !slices.Contains(headers, h) {
			headers = append(headers, h)
		}
	}
	return headers
}
