package components

import (
	"ezrent/internal/domain/upload"
	"ezrent/internal/pkg/clock"
	"ezrent/internal/pkg/config"
	"ezrent/internal/pkg/jwt"
	"ezrent/internal/pkg/metrics"
	"ezrent/internal/pkg/password"
	"ezrent/internal/usecase"
	"ezrent/internal/usecase/commands"
	"ezrent/internal/usecase/notify"
	"ezrent/internal/usecase/queries"
	"ezrent/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		password.NewHasher,
		fx.As(new(commands.PasswordHasher)),
	),
	func(s *jwt.Service) commands.TokenIssuer { return s },
	NewUploadPolicy,
	NewDispatcher,
	func(d *notify.Dispatcher) commands.Notifier { return d },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewItemCommands,
		commands.NewBookingCommands,
		commands.NewNotificationCommands,
		commands.NewMessageCommands,
		NewUploadCommands,
	),
	fx.Invoke(shutdownDispatcher),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewItemQueries,
		queries.NewBookingQueries,
		queries.NewHistoryQueries,
		queries.NewNotificationQueries,
		queries.NewMessageQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewDispatcher(
	uow shared.UnitOfWork,
	mailer notify.Mailer,
	renderer notify.Renderer,
	clk clock.Clock,
	cfg config.Config,
	m *metrics.Metrics,
) *notify.Dispatcher {
	return notify.NewDispatcher(uow, mailer, renderer, clk, m).WithSendTimeout(cfg.Mail.SendTimeout)
}

func NewUploadPolicy(cfg config.Config) upload.Policy {
	p := upload.DefaultPolicy()
	if cfg.Upload.MaxFiles > 0 {
		p.MaxFiles = cfg.Upload.MaxFiles
	}
	if cfg.Upload.MaxFileBytes > 0 {
		p.MaxFileBytes = cfg.Upload.MaxFileBytes
	}
	return p
}

func NewUploadCommands(store commands.FileStore, policy upload.Policy, cfg config.Config, m *metrics.Metrics) commands.UploadCommands {
	return commands.NewUploadCommands(store, policy, cfg.Cloudinary.Folder, m)
}
