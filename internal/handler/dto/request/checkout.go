package request

import "strings"

// Required fields are checked by the checkout usecase so each missing field gets its own error.
type CreateCheckoutRequest struct {
	ProductID     string `json:"product_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

func (r CreateCheckoutRequest) Normalized() CreateCheckoutRequest {
	return CreateCheckoutRequest{
		ProductID:     strings.TrimSpace(r.ProductID),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
	}
}
