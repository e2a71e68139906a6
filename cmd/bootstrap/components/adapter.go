package components

import (
	"context"

	"ezrent/internal/infra/cache"
	"ezrent/internal/infra/mailer"
	"ezrent/internal/infra/storage"
	"ezrent/internal/pkg/config"
	"ezrent/internal/usecase/commands"
	"ezrent/internal/usecase/notify"
	"ezrent/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// AdapterModule binds the external services: Redis item cache, mail backend, template
// renderer and image host.
var AdapterModule = fx.Module("adapter",
	fx.Provide(
		NewItemCache,
		func(c *cache.ItemCache) queries.ItemCache { return c },
		func(c *cache.ItemCache) commands.ItemCacheInvalidator { return c },
		NewMailer,
		fx.Annotate(
			mailer.NewTemplateRenderer,
			fx.As(new(notify.Renderer)),
		),
		fx.Annotate(
			NewFileStore,
			fx.As(new(commands.FileStore)),
		),
	),
)

func NewItemCache(client *redis.Client, cfg config.Config) *cache.ItemCache {
	return cache.NewItemCache(client, cfg.Redis.ItemTTL)
}

func NewMailer(cfg config.Config) (notify.Mailer, error) {
	return mailer.New(cfg.Mail)
}

func NewFileStore(cfg config.Config) (*storage.CloudinaryStore, error) {
	return storage.NewCloudinaryStore(cfg.Cloudinary)
}

// shutdownDispatcher drains pending email deliveries before the pool closes.
func shutdownDispatcher(lc fx.Lifecycle, d *notify.Dispatcher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return d.Shutdown(ctx)
		},
	})
}
