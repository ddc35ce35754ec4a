package glomopay

import "electro-checkout/internal/pkg/patch"

// Wire types for the GlomoPay v1 API. Field names follow the provider's JSON exactly.

const (
	customersPath    = "/api/v1/customers"
	paymentLinksPath = "/api/v1/payin"
)

type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
}

type CustomerResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Identifier prefers "id" and falls back to "customer_id".
func (r CustomerResponse) Identifier() string {
	return patch.FirstNonZero(r.ID, r.CustomerID)
}

type PaymentLinkProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreatePaymentLinkRequest struct {
	CustomerID         string             `json:"customer_id"`
	PaymentMethods     []string           `json:"payment_methods"`
	Currency           string             `json:"currency"`
	Amount             int64              `json:"amount"`
	PurposeCode        string             `json:"purpose_code"`
	InvoiceDescription string             `json:"invoice_description"`
	ReferenceNumber    string             `json:"reference_number"`
	ExpiresAt          string             `json:"expires_at"`
	Product            PaymentLinkProduct `json:"product"`
	Notes              map[string]string  `json:"notes"`
}

type PaymentLinkResponse struct {
	ID          string `json:"id"`
	PaymentLink string `json:"payment_link"`
	Status      string `json:"status"`
	ExpiresAt   string `json:"expires_at"`
}
