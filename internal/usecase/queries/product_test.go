//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"electro-checkout/internal/domain/product"
	"electro-checkout/internal/infra"
	"electro-checkout/internal/pkg/errs"
	"electro-checkout/internal/usecase/queries"
	"electro-checkout/tests/common/builder"
	sharedmock "electro-checkout/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	readStore *sharedmock.MockProductReadStore
	q         queries.ProductQueries
	catalog   []product.Product
}

func (s *ProductQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.readStore = sharedmock.NewMockProductReadStore(s.ctrl)
	s.q = queries.NewProductQueries(s.readStore)

	headphones, err := builder.NewProductBuilder().BuildDomain()
	s.Require().NoError(err)
	earbuds, err := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
		b.ID = "sony-wf1000xm5"
		b.Name = "WF-1000XM5"
		b.Description = "Premium noise cancelling earbuds"
		b.Category = "Earbuds"
	}).BuildDomain()
	s.Require().NoError(err)
	s.catalog = []product.Product{headphones, earbuds}
}

func (s *ProductQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProductQueriesSuite(t *testing.T) {
	suite.Run(t, new(ProductQueriesTestSuite))
}

func (s *ProductQueriesTestSuite) TestListProducts() {
	s.Run("success", func() {
		s.readStore.EXPECT().List(gomock.Any()).Return(s.catalog, nil).Times(1)

		products, err := s.q.ListProducts(context.Background())
		s.Require().NoError(err)
		s.Len(products, 2)
	})

	s.Run("store failure is wrapped", func() {
		storeErr := errors.New("boom")
		s.readStore.EXPECT().List(gomock.Any()).Return(nil, storeErr).Times(1)

		_, err := s.q.ListProducts(context.Background())
		s.ErrorIs(err, storeErr)
	})
}

func (s *ProductQueriesTestSuite) TestGetProduct() {
	s.Run("success", func() {
		s.readStore.EXPECT().FindByID(gomock.Any(), "sony-wh1000xm5").Return(s.catalog[0], nil).Times(1)

		p, err := s.q.GetProduct(context.Background(), "sony-wh1000xm5")
		s.Require().NoError(err)
		s.Equal("WH-1000XM5", p.Name)
	})

	s.Run("not found", func() {
		notFound := infra.RepositoryError{Kind: infra.KindNotFound}
		s.readStore.EXPECT().FindByID(gomock.Any(), "missing").Return(product.Product{}, notFound).Times(1)

		_, err := s.q.GetProduct(context.Background(), "missing")
		s.True(errs.Is(err, queries.ErrProductNotFound))
	})
}

func (s *ProductQueriesTestSuite) TestSearchProducts() {
	s.Run("returns matches with the original query", func() {
		s.readStore.EXPECT().List(gomock.Any()).Return(s.catalog, nil).Times(1)

		res, err := s.q.SearchProducts(context.Background(), "Earbuds under $300")
		s.Require().NoError(err)
		s.Equal("Earbuds under $300", res.Query)
		s.Require().Len(res.Products, 1)
		s.Equal("sony-wf1000xm5", res.Products[0].ID)
	})

	s.Run("no matches returns an empty list", func() {
		s.readStore.EXPECT().List(gomock.Any()).Return(s.catalog, nil).Times(1)

		res, err := s.q.SearchProducts(context.Background(), "television")
		s.Require().NoError(err)
		s.NotNil(res.Products)
		s.Empty(res.Products)
	})

	s.Run("blank query never reads the store", func() {
		s.readStore.EXPECT().List(gomock.Any()).Times(0)

		for _, q := range []string{"", "   ", "\t"} {
			_, err := s.q.SearchProducts(context.Background(), q)
			s.True(errs.Is(err, queries.ErrEmptyQuery), "query %q", q)
		}
	})
}

func TestSearchProducts_Repeatable(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := sharedmock.NewMockProductReadStore(ctrl)

	p, err := builder.NewProductBuilder().BuildDomain()
	require.NoError(t, err)
	readStore.EXPECT().List(gomock.Any()).Return([]product.Product{p}, nil).Times(2)

	q := queries.NewProductQueries(readStore)
	first, err := q.SearchProducts(context.Background(), "sony")
	require.NoError(t, err)
	second, err := q.SearchProducts(context.Background(), "sony")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
