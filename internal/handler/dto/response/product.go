package response

import (
	"electro-checkout/internal/domain/product"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

type ProductListResponse struct {
	Success  bool               `json:"success"`
	Count    int                `json:"count"`
	Products []*ProductResponse `json:"products"`
}

type ProductDetailResponse struct {
	Success bool             `json:"success"`
	Product *ProductResponse `json:"product"`
}

type ProductSearchResponse struct {
	Success  bool               `json:"success"`
	Query    string             `json:"query"`
	Count    int                `json:"count"`
	Products []*ProductResponse `json:"products"`
}

var productCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: float64(0),
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).InexactFloat64(), nil
			},
		},
	},
}

func FromProduct(p product.Product) (*ProductResponse, error) {
	var res ProductResponse
	if err := copier.CopyWithOption(&res, &p, productCopyOption); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromProducts(products []product.Product) ([]*ProductResponse, error) {
	res := make([]*ProductResponse, len(products))
	for i, p := range products {
		item, err := FromProduct(p)
		if err != nil {
			return nil, err
		}
		res[i] = item
	}
	return res, nil
}
