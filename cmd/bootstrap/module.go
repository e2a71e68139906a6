package bootstrap

import (
	"ezrent/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.AdapterModule,
	components.UseCaseModule,
	components.HandlerModule,
)
