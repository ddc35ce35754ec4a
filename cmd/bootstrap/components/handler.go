package components

import (
	"electro-checkout/internal/handler"
	"electro-checkout/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewCheckoutHandler,
	),
	fx.Invoke(handler.NewRouter),
)
