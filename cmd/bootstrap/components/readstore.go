package components

import (
	"electro-checkout/internal/infra/readstore"
	"electro-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var ReadStoreModule = fx.Module("readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(shared.ProductReadStore)),
		),
	),
)
