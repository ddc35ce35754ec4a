package api

import (
	"net/http"

	reqdto "electro-checkout/internal/handler/dto/request"
	resdto "electro-checkout/internal/handler/dto/response"
	"electro-checkout/internal/handler/httperr"
	"electro-checkout/internal/pkg/errs"
	"electro-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	q queries.ProductQueries
}

func NewProductHandler(q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{q: q}
}

// @Summary List products
// @Description List the whole product catalog
// @Tags products
// @Produce json
// @Success 200 {object} resdto.ProductListResponse
// @Router /api/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.q.ListProducts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load products", nil)
		return
	}

	items, err := resdto.FromProducts(products)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load products", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.ProductListResponse{
		Success:  true,
		Count:    len(items),
		Products: items,
	})
}

// @Summary Get product
// @Description Get a single product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")
	p, err := h.q.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product with id '"+id+"' not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}

	item, err := resdto.FromProduct(p)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.ProductDetailResponse{Success: true, Product: item})
}

// @Summary Search products
// @Description Free-text search over name, brand, category and description
// @Tags products
// @Accept json
// @Produce json
// @Param request body reqdto.SearchProductsRequest true "Search request"
// @Success 200 {object} resdto.ProductSearchResponse
// @Failure 400 {object} httperr.Response
// @Router /api/products/search [post]
func (h *ProductHandler) Search(c *gin.Context) {
	var req reqdto.SearchProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Request body is required", nil)
		return
	}

	result, err := h.q.SearchProducts(c.Request.Context(), req.Query)
	if err != nil {
		if errs.Is(err, queries.ErrEmptyQuery) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing 'query' parameter", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred while searching products", nil)
		return
	}

	items, err := resdto.FromProducts(result.Products)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred while searching products", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.ProductSearchResponse{
		Success:  true,
		Query:    result.Query,
		Count:    len(items),
		Products: items,
	})
}
