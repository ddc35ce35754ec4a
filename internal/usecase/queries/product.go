package queries

import (
	"context"
	"strings"

	"electro-checkout/internal/domain/product"
	"electro-checkout/internal/infra"
	"electro-checkout/internal/pkg/errs"
	"electro-checkout/internal/usecase/shared"
)

var (
	ErrProductNotFound = errs.ErrProductNotFound
	ErrEmptyQuery      = errs.New("missing 'query' parameter")
)

type SearchResult struct {
	Query    string
	Products []product.Product
}

type ProductQueries interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
	GetProduct(ctx context.Context, id string) (product.Product, error)
	SearchProducts(ctx context.Context, query string) (*SearchResult, error)
}

type productQueriesImpl struct {
	readStore shared.ProductReadStore
}

func NewProductQueries(readStore shared.ProductReadStore) ProductQueries {
	return &productQueriesImpl{
		readStore: readStore,
	}
}

func (q *productQueriesImpl) ListProducts(ctx context.Context) ([]product.Product, error) {
	products, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list products")
	}
	return products, nil
}

func (q *productQueriesImpl) GetProduct(ctx context.Context, id string) (product.Product, error) {
	p, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return product.Product{}, ErrProductNotFound
		}
		return product.Product{}, errs.Wrap(err, "get product")
	}
	return p, nil
}

func (q *productQueriesImpl) SearchProducts(ctx context.Context, query string) (*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	products, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "search products")
	}

	return &SearchResult{
		Query:    query,
		Products: product.Filter(products, query),
	}, nil
}
