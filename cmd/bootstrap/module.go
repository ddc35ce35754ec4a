package bootstrap

import (
	"electro-checkout/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	PaymentModule,
	components.ReadStoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
