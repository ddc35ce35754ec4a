//go:build unit || e2e

package builder

import (
	"electro-checkout/internal/domain/product"
	"electro-checkout/internal/infra/readstore"
)

type ProductBuilder struct {
	ID          string
	Name        string
	Brand       string
	Price       string
	Description string
	Category    string
	Image       string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          "sony-wh1000xm5",
		Name:        "WH-1000XM5",
		Brand:       "Sony",
		Price:       "399.99",
		Description: "Industry-leading noise cancelling over-ear headphones with 30-hour battery life",
		Category:    "Headphones",
		Image:       "🎧",
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ProductBuilder) BuildDomain() (product.Product, error) {
	return product.NewProduct(b.ID, b.Name, b.Brand, b.Price, b.Description, b.Category, b.Image)
}

func (b *ProductBuilder) BuildSeed() readstore.ProductSeed {
	return readstore.ProductSeed{
		ID:          b.ID,
		Name:        b.Name,
		Brand:       b.Brand,
		Price:       b.Price,
		Description: b.Description,
		Category:    b.Category,
		Image:       b.Image,
	}
}
