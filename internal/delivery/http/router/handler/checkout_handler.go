package handler

import (
	"net/http"

	"maison/internal/delivery/http/middleware"
	"maison/internal/delivery/http/response"
	"maison/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler serves the signed-in shopper's cart and checkout flow.
type CheckoutHandler struct {
	checkout usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(checkout usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// GetCart returns the shopper's server-held cart.
func (h *CheckoutHandler) GetCart(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	items, err := h.checkout.LoadCart(c.Request().Context(), identity.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

type quoteRequest struct {
	DeliveryZone string `json:"deliveryZone" validate:"required"`
	VoucherCode  string `json:"voucherCode"`
}

// Quote prices the current cart against a zone and optional voucher. The
// client calls it again whenever any addend changes.
func (h *CheckoutHandler) Quote(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.IdentityFrom(c)
	ctx := c.Request().Context()

	items, err := h.checkout.LoadCart(ctx, identity.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	quote, err := h.checkout.Quote(ctx, &usecase.QuoteInput{
		Items:        items,
		DeliveryZone: req.DeliveryZone,
		VoucherCode:  req.VoucherCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}

// PlaceOrder submits the checkout form and creates the order.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var input *usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.IdentityFrom(c)

	output, err := h.checkout.PlaceOrder(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order placed successfully")
}

// ListMyOrders returns the shopper's own order history.
func (h *CheckoutHandler) ListMyOrders(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	orders, err := h.checkout.ListMyOrders(c.Request().Context(), identity.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// TrackingQR streams the PNG tracking code for an order.
func (h *CheckoutHandler) TrackingQR(c echo.Context) error {
	png, err := h.checkout.TrackingQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
