package checkout

import (
	"fmt"
	"time"

	"electro-checkout/internal/domain/product"
)

// ExpiryLayout is the provider's timestamp format: UTC with millisecond precision and a Z suffix.
const ExpiryLayout = "2006-01-02T15:04:05.000Z"

const (
	DefaultLinkTTL     = 180 * 24 * time.Hour
	DefaultCurrency    = "USD"
	DefaultPurposeCode = "P1401"
	PaymentMethodCard  = "card"
)

// PaymentLink describes the hosted checkout page requested for one product and one customer.
type PaymentLink struct {
	CustomerID         string
	PaymentMethods     []string
	Currency           string
	AmountMinor        int64
	PurposeCode        string
	InvoiceDescription string
	ReferenceNumber    string
	ExpiresAt          time.Time
	ProductName        string
	ProductDescription string
	Notes              map[string]string
}

type LinkPolicy struct {
	Currency    string
	PurposeCode string
	TTL         time.Duration
}

func DefaultLinkPolicy() LinkPolicy {
	return LinkPolicy{
		Currency:    DefaultCurrency,
		PurposeCode: DefaultPurposeCode,
		TTL:         DefaultLinkTTL,
	}
}

func NewPaymentLink(policy LinkPolicy, customerID string, customer Customer, p product.Product, now time.Time) PaymentLink {
	now = now.UTC()
	return PaymentLink{
		CustomerID:         customerID,
		PaymentMethods:     []string{PaymentMethodCard},
		Currency:           policy.Currency,
		AmountMinor:        p.PriceMinorUnits(),
		PurposeCode:        policy.PurposeCode,
		InvoiceDescription: fmt.Sprintf("%s - %s", p.DisplayName(), p.Description),
		ReferenceNumber:    ReferenceNumber(p.ID, now),
		ExpiresAt:          now.Add(policy.TTL),
		ProductName:        p.DisplayName(),
		ProductDescription: p.Description,
		Notes: map[string]string{
			"product_id":     p.ID,
			"product_name":   p.Name,
			"customer_email": customer.Email,
			"customer_phone": customer.Phone.Value(),
		},
	}
}

// ReferenceNumber is unique per product per second.
func ReferenceNumber(productID string, now time.Time) string {
	return fmt.Sprintf("REF_%s_%d", productID, now.Unix())
}

func FormatExpiry(t time.Time) string {
	return t.UTC().Format(ExpiryLayout)
}
