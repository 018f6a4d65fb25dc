package middleware

import (
	"log/slog"
	"slices"

	"commerce-order-core/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	slog.Debug("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_methods", cfg.AllowMethods)

	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     slices.Concat(cfg.AllowHeaders, []string{requestIDHeader}),
		ExposeHeaders:    slices.Concat(cfg.ExposeHeaders, []string{requestIDHeader}),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
