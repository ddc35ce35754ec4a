package glomopay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"electro-checkout/internal/domain/checkout"
	"electro-checkout/internal/infra"
	"electro-checkout/internal/pkg/config"
	"electro-checkout/internal/pkg/errs"
	"electro-checkout/internal/usecase/shared"
)

const maxResponseBytes = 1 << 20

const (
	opCreateCustomer    = "create customer"
	opCreatePaymentLink = "create payment link"
)

// Client talks to the GlomoPay REST API. Every call is a single attempt; there are no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
	logger     *slog.Logger
}

func NewClient(cfg config.PaymentConfig, logger *slog.Logger) *Client {
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return NewClientWithHTTP(cfg, httpClient, logger)
}

func NewClientWithHTTP(cfg config.PaymentConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout,
		logger:     logger,
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) CreateCustomer(ctx context.Context, customer checkout.Customer) (*shared.RemoteCustomer, error) {
	payload := CreateCustomerRequest{
		Name:    customer.Name,
		Email:   customer.Email,
		Phone:   customer.Phone.Value(),
		Address: customer.Address,
		City:    customer.City,
		State:   customer.State,
		Country: customer.Country,
		Pincode: customer.Pincode,
	}

	var resp CustomerResponse
	if err := c.post(ctx, opCreateCustomer, customersPath, payload, &resp); err != nil {
		return nil, err
	}

	return &shared.RemoteCustomer{
		ID:    resp.Identifier(),
		Name:  resp.Name,
		Email: resp.Email,
		Phone: resp.Phone,
	}, nil
}

func (c *Client) CreatePaymentLink(ctx context.Context, link checkout.PaymentLink) (*shared.IssuedPaymentLink, error) {
	payload := CreatePaymentLinkRequest{
		CustomerID:         link.CustomerID,
		PaymentMethods:     link.PaymentMethods,
		Currency:           link.Currency,
		Amount:             link.AmountMinor,
		PurposeCode:        link.PurposeCode,
		InvoiceDescription: link.InvoiceDescription,
		ReferenceNumber:    link.ReferenceNumber,
		ExpiresAt:          checkout.FormatExpiry(link.ExpiresAt),
		Product: PaymentLinkProduct{
			Name:        link.ProductName,
			Description: link.ProductDescription,
		},
		Notes: link.Notes,
	}

	var resp PaymentLinkResponse
	if err := c.post(ctx, opCreatePaymentLink, paymentLinksPath, payload, &resp); err != nil {
		return nil, err
	}

	return &shared.IssuedPaymentLink{
		ID:        resp.ID,
		URL:       resp.PaymentLink,
		Status:    resp.Status,
		ExpiresAt: resp.ExpiresAt,
	}, nil
}

func (c *Client) post(ctx context.Context, op, path string, payload, out any) error {
	if !c.Configured() {
		return errs.ErrPaymentNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrapf(err, "%s: encode payload", op)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errs.Wrapf(err, "%s: build request", op)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("payment provider unreachable", "op", op, "error", err.Error())
		return infra.NewProviderError(infra.KindTransport, op, 0, "", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return infra.NewProviderError(infra.KindTransport, op, res.StatusCode, "", err)
	}

	c.logger.Info("payment provider responded", "op", op, "status_code", res.StatusCode, "duration", time.Since(start))

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("payment provider rejected request", "op", op, "status_code", res.StatusCode, "body", string(raw))
		return infra.NewProviderError(infra.KindUpstreamStatus, op, res.StatusCode, string(raw), nil)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Error("payment provider returned malformed body", "op", op, "body", string(raw))
		return infra.NewProviderError(infra.KindMalformedResponse, op, res.StatusCode, string(raw), err)
	}
	return nil
}
