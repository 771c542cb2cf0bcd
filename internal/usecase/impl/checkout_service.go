package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	deliverycontext "maison/internal/delivery/context"
	"maison/internal/domain/entity"
	domainerrors "maison/internal/domain/errors"
	"maison/internal/domain/repository"
	"maison/internal/domain/service"
	"maison/internal/usecase"

	"github.com/google/uuid"
)

// voucher is a flat-table promotion: a percentage off the subtotal, gated by
// a minimum subtotal.
type voucher struct {
	percent     float64
	minSubtotal float64
}

// Voucher and delivery-charge tables. The backend validates orders against
// its own copy; these only drive the quote shown before submission.
var (
	vouchers = map[string]voucher{
		"WELCOME10": {percent: 10, minSubtotal: 500},
		"GLAM15":    {percent: 15, minSubtotal: 1500},
	}

	deliveryCharges = map[string]float64{
		"dhaka":   60,
		"outside": 120,
	}
)

// Bangladeshi mobile numbers as entered on the form: exactly 11 digits.
var phonePattern = regexp.MustCompile(`^[0-9]{11}$`)

type checkoutService struct {
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// NewCheckoutService creates the storefront checkout usecase.
func NewCheckoutService(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	publisher service.EventPublisher,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		publisher: publisher,
		qrcode:    qrcode,
		logger:    logger,
	}
}

func (s *checkoutService) LoadCart(ctx context.Context, email string) ([]entity.CartItem, error) {
	return s.cartRepo.GetCart(ctx, email)
}

// Quote computes total = subtotal + deliveryCharge - voucherDiscount.
// An unknown voucher or an unmet minimum fails the quote rather than
// silently pricing without the discount.
func (s *checkoutService) Quote(_ context.Context, input *usecase.QuoteInput) (*usecase.Quote, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	subtotal := entity.Subtotal(input.Items)

	charge, ok := deliveryCharges[strings.ToLower(input.DeliveryZone)]
	if !ok {
		return nil, domainerrors.ErrUnknownDeliveryZone.WithDetails(input.DeliveryZone)
	}

	quote := &usecase.Quote{
		Subtotal:       subtotal,
		DeliveryCharge: charge,
	}

	if code := strings.ToUpper(strings.TrimSpace(input.VoucherCode)); code != "" {
		v, ok := vouchers[code]
		if !ok {
			return nil, domainerrors.ErrUnknownVoucher.WithDetails(code)
		}
		if subtotal < v.minSubtotal {
			return nil, domainerrors.ErrVoucherMinimum.WithDetails(
				fmt.Sprintf("%s requires a minimum subtotal of %.0f", code, v.minSubtotal))
		}
		quote.VoucherDiscount = subtotal * v.percent / 100
		quote.VoucherApplied = true
	}

	quote.Total = quote.Subtotal + quote.DeliveryCharge - quote.VoucherDiscount

	return quote, nil
}

// PlaceOrder consumes the shopper's cart and submits one order-creation
// request. The backend owns the order document; payment stays pending and is
// settled out of band.
func (s *checkoutService) PlaceOrder(ctx context.Context, identity *service.IdentityUser, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if !phonePattern.MatchString(input.Phone) {
		return nil, domainerrors.ErrInvalidPhone
	}

	items, err := s.cartRepo.GetCart(ctx, identity.Email)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	quote, err := s.Quote(ctx, &usecase.QuoteInput{
		Items:        items,
		DeliveryZone: input.DeliveryZone,
		VoucherCode:  input.VoucherCode,
	})
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:          identity.UID,
		UserEmail:       identity.Email,
		UserName:        input.Name,
		Items:           entity.ToOrderItems(items),
		Total:           quote.Total,
		OrderStatus:     entity.OrderStatusConfirmed,
		PaymentStatus:   entity.PaymentStatusPending,
		DeliveryStatus:  entity.DeliveryStatusPending,
		DeliveryNotes:   input.Notes,
		Phone:           input.Phone,
		ShippingAddress: input.Address,
		City:            input.City,
		DeliveryZone:    input.DeliveryZone,
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	s.publishPlacedEvent(ctx, created)

	return &usecase.PlaceOrderOutput{Order: created, Quote: quote}, nil
}

func (s *checkoutService) ListMyOrders(ctx context.Context, email string) ([]*entity.Order, error) {
	return s.orderRepo.ListUserOrders(ctx, email)
}

func (s *checkoutService) TrackingQR(_ context.Context, orderID string) ([]byte, error) {
	return s.qrcode.GenerateTrackingQR(orderID)
}

func (s *checkoutService) publishPlacedEvent(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		EventID:        uuid.NewString(),
		EventType:      service.EventOrderPlaced,
		OrderID:        order.ID,
		UserEmail:      order.UserEmail,
		OrderStatus:    string(order.OrderStatus),
		DeliveryStatus: string(order.DeliveryStatus),
		Total:          order.Total,
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt:     time.Now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("publish order placed event failed",
			slog.String("order_id", order.ID), slog.Any("error", err))
	}
}
