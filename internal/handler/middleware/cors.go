package middleware

import (
	"log/slog"
	"slices"

	"ezrent/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const anyOrigin = "*"

// BuildCORSConfig maps the CORS_* settings onto gin-contrib/cors.
// A lone "*" origin allows everything and drops credentials; browsers refuse that pair.
func BuildCORSConfig(cfg config.CORSConfig) (cors.Config, error) {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
		CustomSchemas:    cfg.CustomSchemas,
	}

	if slices.Contains(cfg.AllowOrigins, anyOrigin) {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowWildcard = true
	}

	if err := corsCfg.Validate(); err != nil {
		return cors.Config{}, err
	}
	return corsCfg, nil
}

// NewCORSMiddleware expects a config that already passed BuildCORSConfig at startup.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg, err := BuildCORSConfig(cfg)
	if err != nil {
		panic("invalid CORS config: " + err.Error())
	}
	slog.Info("CORS middleware initialized",
		"allowOrigins", cfg.AllowOrigins,
		"allowAll", corsCfg.AllowAllOrigins,
		"credentials", corsCfg.AllowCredentials,
	)
	return cors.New(corsCfg)
}
