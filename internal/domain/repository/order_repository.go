// Package repository declares the data-access contracts of the domain. Every
// implementation talks to the external backend API, which owns persistence
// and business rules; nothing here stores data locally.
package repository

import (
	"context"

	"maison/internal/domain/entity"
)

// OrderRepository covers order reads, order placement, deletion, aggregate
// statistics and the courier-facing delivery transitions. Transition
// validation happens backend-side; callers only request an intended action.
type OrderRepository interface {
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	ListUserOrders(ctx context.Context, email string) ([]*entity.Order, error)
	ListOrdersByDeliveryStatus(ctx context.Context, status entity.DeliveryStatus) ([]*entity.Order, error)
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error

	OrderStats(ctx context.Context) (*entity.OrderStats, error)
	DeliveryStats(ctx context.Context) (*entity.DeliveryStats, error)

	AssignDelivery(ctx context.Context, orderID, courier string) error
	MarkShipped(ctx context.Context, orderID string) error
	MarkOutForDelivery(ctx context.Context, orderID string) error
	MarkDelivered(ctx context.Context, orderID string) error
	SetCustomStatus(ctx context.Context, orderID string, orderStatus entity.OrderStatus, deliveryStatus entity.DeliveryStatus, notes string) error
}
