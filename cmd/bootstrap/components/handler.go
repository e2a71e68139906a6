package components

import (
	"ezrent/internal/handler"
	"ezrent/internal/handler/api"
	"ezrent/internal/handler/middleware"
	"ezrent/internal/handler/validation"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewHistoryHandler,
		api.NewNotificationHandler,
		api.NewMessageHandler,
		api.NewUploadHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		validation.Register,
		handler.NewRouter,
	),
)
