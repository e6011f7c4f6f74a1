package components

import (
	"keyshop/internal/handler"
	"keyshop/internal/handler/api"
	"keyshop/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewInventoryHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
