package request

type SearchProductsRequest struct {
	Query string `json:"query"`
}
