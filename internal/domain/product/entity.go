package product

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductID   = errors.New("product id cannot be empty")
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrInvalidPrice     = errors.New("product price must be a positive decimal amount")
)

// Product is an immutable catalog entry. Values are passed by copy; nothing mutates them after construction.
type Product struct {
	ID          string
	Name        string
	Brand       string
	Price       decimal.Decimal
	Description string
	Category    string
	Image       string
}

func NewProduct(id, name, brand, price, description, category, image string) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, ErrEmptyProductID
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, ErrEmptyProductName
	}

	amount, err := decimal.NewFromString(price)
	if err != nil || !amount.IsPositive() {
		return Product{}, ErrInvalidPrice
	}

	return Product{
		ID:          id,
		Name:        name,
		Brand:       strings.TrimSpace(brand),
		Price:       amount,
		Description: strings.TrimSpace(description),
		Category:    strings.TrimSpace(category),
		Image:       image,
	}, nil
}

// DisplayName is the brand-qualified name shown on invoices and checkout pages.
func (p Product) DisplayName() string {
	if p.Brand == "" {
		return p.Name
	}
	return p.Brand + " " + p.Name
}

// PriceMinorUnits converts the price to cents, truncating anything below one cent.
func (p Product) PriceMinorUnits() int64 {
	return p.Price.Shift(2).Truncate(0).IntPart()
}

// FormattedPrice renders the price with exactly two fraction digits.
func (p Product) FormattedPrice() string {
	return p.Price.StringFixed(2)
}

func (p Product) searchText() string {
	return strings.ToLower(strings.Join([]string{p.Name, p.Brand, p.Category, p.Description}, " "))
}
