package bootstrap

import (
	"log/slog"

	"ezrent/internal/handler/middleware"
	"ezrent/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		logConfig,
		middleware.NewLogger,
		NewSlogLogger,
	),
)

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}

// logConfig lets middleware.NewLogger take only the section it needs.
func logConfig(cfg config.Config) config.LogConfig {
	return cfg.Log
}
