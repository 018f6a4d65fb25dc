package components

import (
	"commerce-order-core/internal/handler"
	"commerce-order-core/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPurchaseHandler,
		api.NewRefundHandler,
	),
	fx.Invoke(handler.NewRouter),
)
