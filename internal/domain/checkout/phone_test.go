//go:build unit

package checkout_test

import (
	"testing"

	"electro-checkout/internal/domain/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	t.Run("success: normalizes to +CC-NUMBER", func(t *testing.T) {
		testCases := []struct {
			raw      string
			expected string
		}{
			{raw: "9876543210", expected: "+91-9876543210"},
			{raw: "+919876543210", expected: "+91-9876543210"},
			{raw: "919876543210", expected: "+91-9876543210"},
			{raw: "+91 98765 43210", expected: "+91-9876543210"},
			{raw: "+91-98765-43210", expected: "+91-9876543210"},
			{raw: " 98765 43210 ", expected: "+91-9876543210"},
			{raw: "+14155550100", expected: "+91-14155550100"},
		}

		for _, tc := range testCases {
			t.Run(tc.raw, func(t *testing.T) {
				phone, err := checkout.NewPhone(tc.raw)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, phone.Value())
				assert.Equal(t, tc.expected, phone.String())
			})
		}
	})

	t.Run("error: rejects values that are not digits", func(t *testing.T) {
		for _, raw := range []string{"", "+", " - ", "abc", "98765x3210", "(987) 654-3210", "91"} {
			t.Run(raw, func(t *testing.T) {
				_, err := checkout.NewPhone(raw)
				assert.ErrorIs(t, err, checkout.ErrInvalidPhone)
			})
		}
	})
}
