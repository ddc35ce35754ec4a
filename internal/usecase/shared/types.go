package shared

// RemoteCustomer is the provider-side customer record. Only ID is carried into the payment link.
type RemoteCustomer struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// IssuedPaymentLink is what the provider returned for a payment-link request.
// URL may be empty when the provider accepted the request but holds it for review.
type IssuedPaymentLink struct {
	ID        string
	URL       string
	Status    string
	ExpiresAt string
}

func (l IssuedPaymentLink) Ready() bool {
	return l.URL != ""
}
