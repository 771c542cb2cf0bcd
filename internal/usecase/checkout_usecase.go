package usecase

import (
	"context"

	"maison/internal/domain/entity"
	"maison/internal/domain/service"
)

// QuoteInput carries everything the totals depend on. Recomputing a quote is
// cheap and side-effect free; the UI calls it whenever any addend changes.
type QuoteInput struct {
	Items        []entity.CartItem
	DeliveryZone string
	VoucherCode  string
}

// Quote breaks the checkout total into its addends:
// total = subtotal + deliveryCharge - voucherDiscount.
type Quote struct {
	Subtotal        float64 `json:"subtotal"`
	DeliveryCharge  float64 `json:"deliveryCharge"`
	VoucherDiscount float64 `json:"voucherDiscount"`
	Total           float64 `json:"total"`
	VoucherApplied  bool    `json:"voucherApplied"`
}

// PlaceOrderInput is the checkout address form.
type PlaceOrderInput struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	DeliveryZone string `json:"deliveryZone" validate:"required"`
	Notes        string `json:"notes"`
	VoucherCode  string `json:"voucherCode"`
}

// PlaceOrderOutput returns the created order as confirmed by the backend.
type PlaceOrderOutput struct {
	Order *entity.Order `json:"order"`
	Quote *Quote        `json:"quote"`
}

// CheckoutUsecase loads the cart, computes totals and places the order.
// Payment processing is not part of checkout; orders are created with a
// pending payment status and settled out of band.
type CheckoutUsecase interface {
	// LoadCart returns the shopper's server-held cart.
	LoadCart(ctx context.Context, email string) ([]entity.CartItem, error)

	// Quote computes the checkout totals for the given inputs.
	Quote(ctx context.Context, input *QuoteInput) (*Quote, error)

	// PlaceOrder validates the address form, consumes the cart and submits
	// a single order-creation request to the backend.
	PlaceOrder(ctx context.Context, identity *service.IdentityUser, input *PlaceOrderInput) (*PlaceOrderOutput, error)

	// ListMyOrders returns the shopper's own orders.
	ListMyOrders(ctx context.Context, email string) ([]*entity.Order, error)

	// TrackingQR renders the tracking QR code for a placed order.
	TrackingQR(ctx context.Context, orderID string) ([]byte, error)
}
