package readstore

import (
	"context"
	"log/slog"
	"slices"

	"electro-checkout/internal/domain/product"
	"electro-checkout/internal/infra"
	"electro-checkout/internal/pkg/errs"
)

// ProductReadStore serves the fixed in-memory catalog. It is built once and never mutated.
type ProductReadStore struct {
	products []product.Product
	logger   *slog.Logger
}

func NewProductReadStore(logger *slog.Logger) (*ProductReadStore, error) {
	return NewProductReadStoreFrom(logger, catalogSeed)
}

func NewProductReadStoreFrom(logger *slog.Logger, seed []ProductSeed) (*ProductReadStore, error) {
	products := make([]product.Product, 0, len(seed))
	seen := make(map[string]struct{}, len(seed))
	for _, s := range seed {
		p, err := product.NewProduct(s.ID, s.Name, s.Brand, s.Price, s.Description, s.Category, s.Image)
		if err != nil {
			return nil, errs.Wrapf(err, "invalid catalog entry %q", s.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, errs.Newf("duplicate catalog entry %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		products = append(products, p)
	}

	logger.Info("product catalog loaded", "count", len(products))
	return &ProductReadStore{products: products, logger: logger}, nil
}

// List returns a copy so callers cannot reorder or replace catalog entries.
func (r *ProductReadStore) List(_ context.Context) ([]product.Product, error) {
	return slices.Clone(r.products), nil
}

func (r *ProductReadStore) FindByID(_ context.Context, id string) (product.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return product.Product{}, infra.WrapRepoErr(r.logger, infra.KindNotFound, "product "+id+" not found", nil)
}
