package bootstrap

import (
	"electro-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewPaymentConfig,
	),
)

func NewPaymentConfig(cfg config.Config) config.PaymentConfig {
	return cfg.Payment
}
