package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"electro-checkout/internal/domain/checkout"
	"electro-checkout/internal/domain/product"
	reqdto "electro-checkout/internal/handler/dto/request"
	"electro-checkout/internal/infra"
	"electro-checkout/internal/pkg/clock"
	"electro-checkout/internal/pkg/config"
	"electro-checkout/internal/pkg/errs"
	"electro-checkout/internal/pkg/patch"
	"electro-checkout/internal/usecase/shared"
)

var (
	ErrMissingProductID     = errs.New("missing 'product_id' parameter")
	ErrMissingCustomerEmail = errs.New("missing 'customer_email' parameter")
	ErrMissingCustomerPhone = errs.New("missing 'customer_phone' parameter")
	ErrInvalidCustomerPhone = errs.New("invalid 'customer_phone' parameter")

	ErrProductNotFound      = errs.ErrProductNotFound
	ErrPaymentNotConfigured = errs.ErrPaymentNotConfigured

	ErrProviderUnreachable    = errs.New("failed to connect to payment provider")
	ErrCustomerCreationFailed = errs.New("failed to create customer account")
	ErrCustomerIDMissing      = errs.New("failed to get customer id")
	ErrPaymentLinkFailed      = errs.New("failed to create payment link")
)

// CheckoutSession is returned only when both provider calls succeeded and a payment link was issued.
type CheckoutSession struct {
	CheckoutID    string
	ProductID     string
	ProductName   string
	Brand         string
	Price         decimal.Decimal
	CustomerEmail string
	CheckoutURL   string
	Status        string
	ExpiresAt     string
	Message       string
}

// PendingPaymentLink means the provider accepted the link request but has not issued a URL yet,
// typically because it requires manual review.
type PendingPaymentLink struct {
	LinkID    string
	ProductID string
	Status    string
}

// CheckoutResult holds exactly one of Session or Pending.
type CheckoutResult struct {
	Session *CheckoutSession
	Pending *PendingPaymentLink
}

type CheckoutCommands interface {
	CreateCheckout(ctx context.Context, req reqdto.CreateCheckoutRequest) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	readStore shared.ProductReadStore
	provider  shared.PaymentProvider
	clock     clock.Clock
	policy    checkout.LinkPolicy
	logger    *slog.Logger
}

func NewCheckoutCommands(
	readStore shared.ProductReadStore,
	provider shared.PaymentProvider,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) CheckoutCommands {
	defaults := checkout.DefaultLinkPolicy()
	policy := checkout.LinkPolicy{
		Currency:    patch.FirstNonZero(cfg.Payment.Currency, defaults.Currency),
		PurposeCode: patch.FirstNonZero(cfg.Payment.PurposeCode, defaults.PurposeCode),
		TTL:         defaults.TTL,
	}
	if cfg.Payment.LinkTTL > 0 {
		policy.TTL = cfg.Payment.LinkTTL
	}

	return &checkoutCommandsImpl{
		readStore: readStore,
		provider:  provider,
		clock:     clk,
		policy:    policy,
		logger:    logger,
	}
}

func (c *checkoutCommandsImpl) CreateCheckout(ctx context.Context, req reqdto.CreateCheckoutRequest) (*CheckoutResult, error) {
	req = req.Normalized()

	phone, err := validateCheckoutRequest(req)
	if err != nil {
		return nil, err
	}

	p, err := c.readStore.FindByID(ctx, req.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "find product")
	}

	if !c.provider.Configured() {
		c.logger.Error("payment provider API key is not set", "env", "GLOMOPAY_API_KEY")
		return nil, ErrPaymentNotConfigured
	}

	customer := checkout.NewCustomer(req.CustomerEmail, phone)

	c.logger.Info("creating payment provider customer", "customer_email", customer.Email)
	remote, err := c.provider.CreateCustomer(ctx, customer)
	if err != nil {
		return nil, classifyProviderErr(err, ErrCustomerCreationFailed)
	}
	if remote == nil || remote.ID == "" {
		c.logger.Error("customer created without an id", "customer_email", customer.Email)
		return nil, ErrCustomerIDMissing
	}

	link := checkout.NewPaymentLink(c.policy, remote.ID, customer, p, c.clock.Now())

	c.logger.Info("creating payment link", "product_id", p.ID, "customer_id", remote.ID, "amount", link.AmountMinor)
	issued, err := c.provider.CreatePaymentLink(ctx, link)
	if err != nil {
		// The remote customer is left in place; there is no delete call to compensate with.
		c.logger.Warn("payment link failed after customer creation", "customer_id", remote.ID, "error", err.Error())
		return nil, classifyProviderErr(err, ErrPaymentLinkFailed)
	}

	if !issued.Ready() {
		c.logger.Warn("payment link accepted without a URL", "link_id", issued.ID, "status", issued.Status)
		return &CheckoutResult{
			Pending: &PendingPaymentLink{
				LinkID:    issued.ID,
				ProductID: p.ID,
				Status:    issued.Status,
			},
		}, nil
	}

	c.logger.Info("payment link created", "link_id", issued.ID, "product_id", p.ID)
	return &CheckoutResult{Session: newCheckoutSession(p, customer, link, issued)}, nil
}

func validateCheckoutRequest(req reqdto.CreateCheckoutRequest) (checkout.Phone, error) {
	if req.ProductID == "" {
		return checkout.Phone{}, ErrMissingProductID
	}
	if req.CustomerEmail == "" {
		return checkout.Phone{}, ErrMissingCustomerEmail
	}
	if req.CustomerPhone == "" {
		return checkout.Phone{}, ErrMissingCustomerPhone
	}

	phone, err := checkout.NewPhone(req.CustomerPhone)
	if err != nil {
		return checkout.Phone{}, errs.Mark(err, ErrInvalidCustomerPhone)
	}
	return phone, nil
}

func classifyProviderErr(err error, upstreamSentinel error) error {
	switch {
	case infra.IsProviderKind(err, infra.KindTransport):
		return errs.Mark(err, ErrProviderUnreachable)
	case infra.IsProviderKind(err, infra.KindUpstreamStatus), infra.IsProviderKind(err, infra.KindMalformedResponse):
		return errs.Mark(err, upstreamSentinel)
	default:
		return errs.Wrap(err, "payment provider call")
	}
}

func newCheckoutSession(p product.Product, customer checkout.Customer, link checkout.PaymentLink, issued *shared.IssuedPaymentLink) *CheckoutSession {
	return &CheckoutSession{
		CheckoutID:    issued.ID,
		ProductID:     p.ID,
		ProductName:   p.Name,
		Brand:         p.Brand,
		Price:         p.Price,
		CustomerEmail: customer.Email,
		CheckoutURL:   issued.URL,
		Status:        issued.Status,
		ExpiresAt:     patch.FirstNonZero(issued.ExpiresAt, checkout.FormatExpiry(link.ExpiresAt)),
		Message:       fmt.Sprintf("Ready to purchase %s for $%s", p.DisplayName(), p.FormattedPrice()),
	}
}
