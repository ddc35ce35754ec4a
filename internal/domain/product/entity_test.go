//go:build unit

package product_test

import (
	"testing"

	"electro-checkout/internal/domain/product"
	"electro-checkout/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("success: builds product with trimmed fields", func(t *testing.T) {
		actual, err := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.ID = "  sony-wh1000xm5 "
			b.Brand = " Sony "
		}).BuildDomain()
		require.NoError(t, err)

		expected := product.Product{
			ID:          "sony-wh1000xm5",
			Name:        "WH-1000XM5",
			Brand:       "Sony",
			Price:       decimal.RequireFromString("399.99"),
			Description: "Industry-leading noise cancelling over-ear headphones with 30-hour battery life",
			Category:    "Headphones",
			Image:       "🎧",
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("Product mismatch (-want +got):\n%s", diff)
		}
	})

	testCases := []struct {
		name   string
		mutate func(*builder.ProductBuilder)
		errIs  error
	}{
		{name: "empty id", mutate: func(b *builder.ProductBuilder) { b.ID = " " }, errIs: product.ErrEmptyProductID},
		{name: "empty name", mutate: func(b *builder.ProductBuilder) { b.Name = "" }, errIs: product.ErrEmptyProductName},
		{name: "non-numeric price", mutate: func(b *builder.ProductBuilder) { b.Price = "abc" }, errIs: product.ErrInvalidPrice},
		{name: "zero price", mutate: func(b *builder.ProductBuilder) { b.Price = "0" }, errIs: product.ErrInvalidPrice},
		{name: "negative price", mutate: func(b *builder.ProductBuilder) { b.Price = "-1.00" }, errIs: product.ErrInvalidPrice},
	}

	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			_, err := builder.NewProductBuilder().With(tc.mutate).BuildDomain()
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestProduct_PriceMinorUnits(t *testing.T) {
	testCases := []struct {
		price    string
		expected int64
	}{
		{price: "399.99", expected: 39999},
		{price: "249.00", expected: 24900},
		{price: "1299.99", expected: 129999},
		{price: "0.01", expected: 1},
		{price: "19.999", expected: 1999},
	}

	for _, tc := range testCases {
		t.Run(tc.price, func(t *testing.T) {
			p, err := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Price = tc.price }).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p.PriceMinorUnits())
		})
	}
}

func TestProduct_DisplayFields(t *testing.T) {
	p, err := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Price = "249" }).BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, "Sony WH-1000XM5", p.DisplayName())
	assert.Equal(t, "249.00", p.FormattedPrice())

	p.Brand = ""
	assert.Equal(t, "WH-1000XM5", p.DisplayName())
}
