package bootstrap

import (
	"log/slog"

	"electro-checkout/internal/infra/glomopay"
	"electro-checkout/internal/pkg/config"
	"electro-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentProvider,
			fx.As(new(shared.PaymentProvider)),
		),
	),
)

func NewPaymentProvider(cfg config.PaymentConfig, logger *slog.Logger) *glomopay.Client {
	if !cfg.Configured() {
		logger.Warn("GLOMOPAY_API_KEY is not set; checkout requests will fail until it is configured")
	}
	return glomopay.NewClient(cfg, logger.With("component", "glomopay"))
}
