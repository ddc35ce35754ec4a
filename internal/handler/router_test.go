//go:build unit

package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	stdhttptest "net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"electro-checkout/internal/handler"
	"electro-checkout/internal/handler/api"
	resdto "electro-checkout/internal/handler/dto/response"
	"electro-checkout/internal/handler/middleware"
	"electro-checkout/internal/infra/glomopay"
	"electro-checkout/internal/infra/readstore"
	"electro-checkout/internal/pkg/clock"
	"electro-checkout/internal/pkg/config"
	"electro-checkout/internal/usecase/commands"
	"electro-checkout/internal/usecase/queries"
	"electro-checkout/tests/common/builder"
	"electro-checkout/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGlomoPay struct {
	customerCalls atomic.Int32
	linkCalls     atomic.Int32
	customer      func(w http.ResponseWriter)
	link          func(w http.ResponseWriter, payload map[string]any)
}

func (f *fakeGlomoPay) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/api/v1/customers":
		f.customerCalls.Add(1)
		f.customer(w)
	case "/api/v1/payin":
		f.linkCalls.Add(1)
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		f.link(w, payload)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func okCustomer(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
	_, _ = io.WriteString(w, `{"id":"cust_123","email":"john.doe@example.com"}`)
}

func okLink(w http.ResponseWriter, _ map[string]any) {
	w.WriteHeader(http.StatusCreated)
	_, _ = io.WriteString(w, `{"id":"payin_456","payment_link":"https://pay.example/payin_456","status":"active"}`)
}

func setupRouter(t *testing.T, fake *fakeGlomoPay, mutate ...func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := stdhttptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig()
	cfg.Payment.BaseURL = srv.URL
	for _, m := range mutate {
		m(&cfg)
	}

	slogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := readstore.NewProductReadStore(slogger)
	require.NoError(t, err)

	provider := glomopay.NewClientWithHTTP(cfg.Payment, srv.Client(), slogger)
	now := time.Date(2025, 10, 16, 4, 0, 15, 0, time.UTC)
	cmds := commands.NewCheckoutCommands(store, provider, clock.NewMockClock(now), cfg, slogger)

	engine := gin.New()
	handler.NewRouter(engine, cfg, middleware.NewLogger(cfg.Log),
		api.NewProductHandler(queries.NewProductQueries(store)),
		api.NewCheckoutHandler(cmds, slogger),
	)
	return engine
}

func TestRouter_Meta(t *testing.T) {
	router := setupRouter(t, &fakeGlomoPay{customer: okCustomer, link: okLink})

	t.Run("index lists endpoints", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/", nil)
		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "running", body["status"])
		assert.Contains(t, body, "endpoints")
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","message":"Service is healthy"}`, rec.Body.String())
	})

	t.Run("unknown route returns JSON 404", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/nope", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Endpoint not found")
	})

	t.Run("request id is echoed or generated", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/health", nil, map[string]string{"X-Request-ID": "req-1"})
		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "req-1"})

		rec = httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)
		httptest.AssertHeaderSet(t, rec, "X-Request-ID")
	})

	t.Run("cors allows any origin", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/health", nil, map[string]string{"Origin": "https://shop.example"})
		httptest.AssertHeaders(t, rec, map[string]string{"Access-Control-Allow-Origin": "*"})
	})
}

func TestRouter_Products(t *testing.T) {
	router := setupRouter(t, &fakeGlomoPay{customer: okCustomer, link: okLink})

	t.Run("list is stable across calls", func(t *testing.T) {
		first := httptest.PerformRequest(t, router, http.MethodGet, "/api/products", nil)
		second := httptest.PerformRequest(t, router, http.MethodGet, "/api/products", nil)

		var body resdto.ProductListResponse
		httptest.AssertSuccessResponse(t, first, http.StatusOK, &body)
		assert.Equal(t, 14, body.Count)
		assert.JSONEq(t, first.Body.String(), second.Body.String())
	})

	t.Run("search earbuds", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/products/search", map[string]string{"query": "earbuds"})

		var body resdto.ProductSearchResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, 3, body.Count)
		assert.Equal(t, "earbuds", body.Query)
	})

	t.Run("search without query", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/products/search", map[string]string{"query": "  "})
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Missing 'query' parameter")
	})

	t.Run("get by id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/products/dell-xps-13", nil)
		var body resdto.ProductDetailResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, 999.99, body.Product.Price)
	})
}

func TestRouter_Checkout(t *testing.T) {
	url := "/api/checkout/create"

	t.Run("success: two provider calls and a session", func(t *testing.T) {
		var amount atomic.Value
		fake := &fakeGlomoPay{customer: okCustomer, link: func(w http.ResponseWriter, payload map[string]any) {
			amount.Store(payload["amount"])
			okLink(w, payload)
		}}
		router := setupRouter(t, fake)

		rec := httptest.PerformRequest(t, router, http.MethodPost, url, builder.NewCheckoutBuilder().BuildRequestDTO())

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.True(t, body.Success)
		assert.Equal(t, "https://pay.example/payin_456", body.CheckoutURL)
		assert.Equal(t, "WH-1000XM5", body.ProductName)
		assert.Equal(t, 399.99, body.Price)
		assert.Equal(t, "2026-04-14T04:00:15.000Z", body.ExpiresAt)
		assert.Equal(t, float64(39999), amount.Load())
		assert.Equal(t, int32(1), fake.customerCalls.Load())
		assert.Equal(t, int32(1), fake.linkCalls.Load())
	})

	t.Run("unknown product makes no provider call", func(t *testing.T) {
		fake := &fakeGlomoPay{customer: okCustomer, link: okLink}
		router := setupRouter(t, fake)

		req := builder.NewCheckoutBuilder().With(func(b *builder.CheckoutBuilder) { b.ProductID = "nope" }).BuildRequestDTO()
		rec := httptest.PerformRequest(t, router, http.MethodPost, url, req)

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Product with id 'nope' not found")
		assert.Equal(t, int32(0), fake.customerCalls.Load())
		assert.Equal(t, int32(0), fake.linkCalls.Load())
	})

	t.Run("missing api key makes no provider call", func(t *testing.T) {
		fake := &fakeGlomoPay{customer: okCustomer, link: okLink}
		router := setupRouter(t, fake, func(c *config.Config) { c.Payment.APIKey = "" })

		rec := httptest.PerformRequest(t, router, http.MethodPost, url, builder.NewCheckoutBuilder().BuildRequestDTO())

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Payment system not configured")
		assert.Equal(t, int32(0), fake.customerCalls.Load())
	})

	t.Run("customer rejection stops before the payment link", func(t *testing.T) {
		fake := &fakeGlomoPay{
			customer: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"error":"invalid phone"}`)
			},
			link: okLink,
		}
		router := setupRouter(t, fake)

		rec := httptest.PerformRequest(t, router, http.MethodPost, url, builder.NewCheckoutBuilder().BuildRequestDTO())

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Failed to create customer account")
		httptest.AssertProviderDetail(t, rec, http.StatusBadRequest, `{"error":"invalid phone"}`)
		assert.Equal(t, int32(1), fake.customerCalls.Load())
		assert.Equal(t, int32(0), fake.linkCalls.Load())
	})

	t.Run("pending link returns 202", func(t *testing.T) {
		fake := &fakeGlomoPay{customer: okCustomer, link: func(w http.ResponseWriter, _ map[string]any) {
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, `{"id":"payin_789","payment_link":"","status":"pending_review"}`)
		}}
		router := setupRouter(t, fake)

		rec := httptest.PerformRequest(t, router, http.MethodPost, url, builder.NewCheckoutBuilder().BuildRequestDTO())

		var body resdto.PendingCheckoutResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusAccepted, &body)
		assert.Equal(t, "payin_789", body.CheckoutID)
		assert.Equal(t, "pending_review", body.Status)
	})
}
