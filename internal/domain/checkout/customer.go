package checkout

import (
	"strings"
	"unicode"
)

// Placeholder postal details sent with every customer record.
// The storefront does not collect an address; the provider still requires one.
const (
	PlaceholderAddress = "Not Provided"
	PlaceholderCity    = "Mumbai"
	PlaceholderState   = "Maharashtra"
	PlaceholderCountry = "IN"
	PlaceholderPincode = "400001"
)

// Customer is the contact record registered with the payment provider before a link is issued.
type Customer struct {
	Name    string
	Email   string
	Phone   Phone
	Address string
	City    string
	State   string
	Country string
	Pincode string
}

func NewCustomer(email string, phone Phone) Customer {
	email = strings.TrimSpace(email)
	return Customer{
		Name:    DisplayNameFromEmail(email),
		Email:   email,
		Phone:   phone,
		Address: PlaceholderAddress,
		City:    PlaceholderCity,
		State:   PlaceholderState,
		Country: PlaceholderCountry,
		Pincode: PlaceholderPincode,
	}
}

// DisplayNameFromEmail title-cases the local part of an address:
// "john.doe_99@example.com" becomes "John.Doe_99".
// A letter is upper-cased when it follows a non-letter, every other letter is lower-cased.
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var b strings.Builder
	b.Grow(len(local))
	prevLetter := false
	for _, r := range local {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
