package response

import (
	"electro-checkout/internal/usecase/commands"
)

type CheckoutResponse struct {
	Success       bool    `json:"success"`
	CheckoutID    string  `json:"checkout_id"`
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Brand         string  `json:"brand"`
	Price         float64 `json:"price"`
	CustomerEmail string  `json:"customer_email"`
	CheckoutURL   string  `json:"checkout_url"`
	Status        string  `json:"status"`
	ExpiresAt     string  `json:"expires_at"`
	Message       string  `json:"message"`
}

type PendingCheckoutResponse struct {
	Success    bool   `json:"success"`
	CheckoutID string `json:"checkout_id,omitempty"`
	ProductID  string `json:"product_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Details    string `json:"details"`
}

func FromCheckoutSession(s *commands.CheckoutSession) *CheckoutResponse {
	return &CheckoutResponse{
		Success:       true,
		CheckoutID:    s.CheckoutID,
		ProductID:     s.ProductID,
		ProductName:   s.ProductName,
		Brand:         s.Brand,
		Price:         s.Price.InexactFloat64(),
		CustomerEmail: s.CustomerEmail,
		CheckoutURL:   s.CheckoutURL,
		Status:        s.Status,
		ExpiresAt:     s.ExpiresAt,
		Message:       s.Message,
	}
}

func FromPendingPaymentLink(p *commands.PendingPaymentLink) *PendingCheckoutResponse {
	return &PendingCheckoutResponse{
		Success:    false,
		CheckoutID: p.LinkID,
		ProductID:  p.ProductID,
		Status:     p.Status,
		Message:    "Payment link not generated yet",
		Details:    "Payment may require manual review by the payment provider",
	}
}
