package shared

import (
	"context"

	"electro-checkout/internal/domain/checkout"
	"electro-checkout/internal/domain/product"
)

type ProductReadStore interface {
	List(ctx context.Context) ([]product.Product, error)
	FindByID(ctx context.Context, id string) (product.Product, error)
}

// PaymentProvider creates customers and hosted payment links on the external provider.
// Each call is a single attempt bounded by the provider timeout.
type PaymentProvider interface {
	Configured() bool
	CreateCustomer(ctx context.Context, customer checkout.Customer) (*RemoteCustomer, error)
	CreatePaymentLink(ctx context.Context, link checkout.PaymentLink) (*IssuedPaymentLink, error)
}
