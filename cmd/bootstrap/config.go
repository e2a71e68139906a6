package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"ezrent/internal/handler/middleware"
	"ezrent/internal/infra/mailer"
	"ezrent/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(checkConfig),
)

// checkConfig stops startup on settings that would otherwise fail on the first request,
// and warns about ones that only make sense in development.
func checkConfig(cfg config.Config) error {
	if _, err := middleware.BuildCORSConfig(cfg.CORS); err != nil {
		return fmt.Errorf("invalid CORS config: %w", err)
	}
	if _, err := time.ParseDuration(cfg.JWT.Duration); err != nil {
		return fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	if cfg.Mail.SendTimeout <= 0 {
		return fmt.Errorf("MAIL_SEND_TIMEOUT must be positive, got %s", cfg.Mail.SendTimeout)
	}

	for _, w := range configWarnings(cfg) {
		slog.Warn("config", "warning", w)
	}
	return nil
}

func configWarnings(cfg config.Config) []string {
	var warnings []string
	if cfg.Mail.Provider == mailer.ProviderLog || cfg.Mail.Provider == "" {
		warnings = append(warnings, "MAIL_PROVIDER=log: emails are written to the log, not sent")
	}
	if !cfg.Cookie.Secure {
		warnings = append(warnings, "COOKIE_SECURE=false: auth cookie is sent over plain http")
	}
	if len(cfg.JWT.Secret) < 32 {
		warnings = append(warnings, "JWT_SECRET is shorter than 32 bytes")
	}
	return warnings
}
