package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro-boss-api/internal/dto"
	"bistro-boss-api/internal/middleware"
	"bistro-boss-api/internal/service"
)

type PaymentHandler struct {
	paymentService  service.PaymentService
	checkoutService service.CheckoutService
}

func NewPaymentHandler(paymentService service.PaymentService, checkoutService service.CheckoutService) *PaymentHandler {
	return &PaymentHandler{
		paymentService:  paymentService,
		checkoutService: checkoutService,
	}
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	clientSecret, err := h.paymentService.CreateIntent(ctx, req.Price)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.PaymentIntentResponse{ClientSecret: clientSecret})
}

// ListPayments is self-scoped: the path email must match the token email.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.Param("email")
	claims := middleware.ClaimsFrom(c)
	if claims == nil || email != claims.Email {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}

	payments, err := h.paymentService.ListByEmail(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkoutService.Settle(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
