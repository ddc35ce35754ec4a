//go:build unit || e2e

package builder

import (
	reqdto "electro-checkout/internal/handler/dto/request"
	"electro-checkout/internal/usecase/commands"
	"electro-checkout/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CheckoutBuilder struct {
	ProductID     string
	CustomerEmail string
	CustomerPhone string
	CustomerID    string
	LinkID        string
	LinkURL       string
	LinkStatus    string
	ExpiresAt     string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		ProductID:     "sony-wh1000xm5",
		CustomerEmail: "john.doe@example.com",
		CustomerPhone: "9876543210",
		CustomerID:    "cust_123",
		LinkID:        "payin_456",
		LinkURL:       "https://checkout.glomopay.com/payin_456",
		LinkStatus:    "active",
		ExpiresAt:     "2026-04-14T10:00:00.000Z",
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CheckoutBuilder) BuildRequestDTO() reqdto.CreateCheckoutRequest {
	return reqdto.CreateCheckoutRequest{
		ProductID:     b.ProductID,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
	}
}

func (b *CheckoutBuilder) BuildRemoteCustomer() *shared.RemoteCustomer {
	return &shared.RemoteCustomer{
		ID:    b.CustomerID,
		Email: b.CustomerEmail,
	}
}

func (b *CheckoutBuilder) BuildIssuedLink() *shared.IssuedPaymentLink {
	return &shared.IssuedPaymentLink{
		ID:        b.LinkID,
		URL:       b.LinkURL,
		Status:    b.LinkStatus,
		ExpiresAt: b.ExpiresAt,
	}
}

func (b *CheckoutBuilder) BuildSession() *commands.CheckoutSession {
	return &commands.CheckoutSession{
		CheckoutID:    b.LinkID,
		ProductID:     b.ProductID,
		ProductName:   "WH-1000XM5",
		Brand:         "Sony",
		Price:         decimal.RequireFromString("399.99"),
		CustomerEmail: b.CustomerEmail,
		CheckoutURL:   b.LinkURL,
		Status:        b.LinkStatus,
		ExpiresAt:     b.ExpiresAt,
		Message:       "Ready to purchase Sony WH-1000XM5 for $399.99",
	}
}
