package api

import (
	"log/slog"
	"net/http"

	reqdto "electro-checkout/internal/handler/dto/request"
	resdto "electro-checkout/internal/handler/dto/response"
	"electro-checkout/internal/handler/httperr"
	"electro-checkout/internal/handler/middleware"
	"electro-checkout/internal/infra"
	"electro-checkout/internal/pkg/errs"
	"electro-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds   commands.CheckoutCommands
	logger *slog.Logger
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, logger: logger}
}

// @Summary Create checkout
// @Description Register the customer with the payment provider and create a hosted payment link
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Success 202 {object} resdto.PendingCheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/checkout/create [post]
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req reqdto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Request body is required", nil)
		return
	}

	result, err := h.cmds.CreateCheckout(c.Request.Context(), req)
	if err != nil {
		h.abortWithCheckoutError(c, req, err)
		return
	}

	if result.Pending != nil {
		c.JSON(http.StatusAccepted, resdto.FromPendingPaymentLink(result.Pending))
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutSession(result.Session))
}

func (h *CheckoutHandler) abortWithCheckoutError(c *gin.Context, req reqdto.CreateCheckoutRequest, err error) {
	switch {
	case errs.Is(err, commands.ErrMissingProductID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing 'product_id' parameter", nil)
	case errs.Is(err, commands.ErrMissingCustomerEmail):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing 'customer_email' parameter", nil)
	case errs.Is(err, commands.ErrMissingCustomerPhone):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing 'customer_phone' parameter", nil)
	case errs.Is(err, commands.ErrInvalidCustomerPhone):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid 'customer_phone' parameter", nil)
	case errs.Is(err, commands.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product with id '"+req.Normalized().ProductID+"' not found", nil)
	case errs.Is(err, commands.ErrPaymentNotConfigured):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment system not configured", nil)
	case errs.Is(err, commands.ErrProviderUnreachable):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to connect to payment provider", nil)
	case errs.Is(err, commands.ErrCustomerCreationFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create customer account", providerDetail(err))
	case errs.Is(err, commands.ErrCustomerIDMissing):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get customer ID", nil)
	case errs.Is(err, commands.ErrPaymentLinkFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create payment link", providerDetail(err))
	default:
		h.logger.Error("checkout creation failed",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred while creating checkout session", nil)
	}
}

func providerDetail(err error) any {
	pe, ok := infra.AsProviderError(err)
	if !ok {
		return nil
	}
	return gin.H{
		"status_code": pe.StatusCode,
		"details":     pe.Body,
	}
}
