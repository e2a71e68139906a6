//go:build unit

package bootstrap

import (
	"testing"
	"time"

	"ezrent/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() config.Config {
	cfg := config.NewTestConfig()
	cfg.Mail.Provider = "smtp"
	cfg.Mail.SendTimeout = 30 * time.Second
	cfg.Cookie.Secure = true
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	return cfg
}

func TestCheckConfig(t *testing.T) {
	t.Run("production-like config passes without warnings", func(t *testing.T) {
		cfg := validConfig()
		require.NoError(t, checkConfig(cfg))
		assert.Empty(t, configWarnings(cfg))
	})

	testCases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"no CORS origins", func(c *config.Config) { c.CORS.AllowOrigins = nil }},
		{"bad JWT duration", func(c *config.Config) { c.JWT.Duration = "a day" }},
		{"zero send timeout", func(c *config.Config) { c.Mail.SendTimeout = 0 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			assert.Error(t, checkConfig(cfg))
		})
	}

	t.Run("development defaults only warn", func(t *testing.T) {
		cfg := validConfig()
		cfg.Mail.Provider = "log"
		cfg.Cookie.Secure = false
		cfg.JWT.Secret = "short"

		require.NoError(t, checkConfig(cfg))
		assert.Len(t, configWarnings(cfg), 3)
	})
}
