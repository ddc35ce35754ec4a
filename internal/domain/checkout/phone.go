package checkout

import (
	"errors"
	"strings"
)

var ErrInvalidPhone = errors.New("phone number must contain only digits after removing '+', '-' and spaces")

// DefaultCountryCode is the calling code assumed for numbers without one.
// Normalization follows a fixed Indian numbering policy and is not a general international formatter.
const DefaultCountryCode = "91"

// Phone is a country-coded number in the canonical "+CC-NUMBER" form.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	digits := strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(raw))
	digits = strings.TrimPrefix(digits, "+")

	if digits == "" || !isDigits(digits) {
		return Phone{}, ErrInvalidPhone
	}

	if !strings.HasPrefix(digits, DefaultCountryCode) {
		return Phone{value: "+" + DefaultCountryCode + "-" + digits}, nil
	}

	countryCode, number := digits[:2], digits[2:]
	if number == "" {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: "+" + countryCode + "-" + number}, nil
}

func (p Phone) Value() string {
	return p.value
}

func (p Phone) String() string {
	return p.value
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
