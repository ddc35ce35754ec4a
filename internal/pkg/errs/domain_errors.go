package errs

import "errors"

// Sentinel errors shared across domain, usecase and infra layers
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")

	// Payment provider errors
	ErrPaymentNotConfigured = errors.New("payment provider not configured")
)
