package backend

import (
	"context"

	"maison/internal/domain/entity"
	"maison/internal/domain/repository"
)

type orderRepository struct {
	client *Client
}

// NewOrderRepository creates a backend-API-backed order repository.
func NewOrderRepository(client *Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	if err := r.client.get(ctx, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) ListUserOrders(ctx context.Context, email string) ([]*entity.Order, error) {
	var orders []*entity.Order
	query := queryValues("email", email)
	if err := r.client.get(ctx, "/api/orders/user", query, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) ListOrdersByDeliveryStatus(ctx context.Context, status entity.DeliveryStatus) ([]*entity.Order, error) {
	var orders []*entity.Order
	if err := r.client.get(ctx, "/api/delivery/orders/"+status.String(), nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	var created entity.Order
	if err := r.client.post(ctx, "/api/orders", order, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	return r.client.delete(ctx, "/api/orders/"+orderID+"/delete")
}

func (r *orderRepository) OrderStats(ctx context.Context) (*entity.OrderStats, error) {
	var stats entity.OrderStats
	if err := r.client.get(ctx, "/api/orders/stats/summary", nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *orderRepository) DeliveryStats(ctx context.Context) (*entity.DeliveryStats, error) {
	var stats entity.DeliveryStats
	if err := r.client.get(ctx, "/api/delivery/stats", nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *orderRepository) AssignDelivery(ctx context.Context, orderID, courier string) error {
	body := map[string]string{"deliveryAssignedTo": courier}

	return r.client.put(ctx, "/api/delivery/assign/"+orderID, body, nil)
}

func (r *orderRepository) MarkShipped(ctx context.Context, orderID string) error {
	return r.client.put(ctx, "/api/delivery/ship/"+orderID, nil, nil)
}

func (r *orderRepository) MarkOutForDelivery(ctx context.Context, orderID string) error {
	body := map[string]string{
		"deliveryStatus": entity.DeliveryStatusOutForDelivery.String(),
	}

	return r.client.put(ctx, "/api/delivery/status/"+orderID, body, nil)
}

func (r *orderRepository) MarkDelivered(ctx context.Context, orderID string) error {
	return r.client.put(ctx, "/api/delivery/deliver/"+orderID, nil, nil)
}

func (r *orderRepository) SetCustomStatus(ctx context.Context, orderID string, orderStatus entity.OrderStatus, deliveryStatus entity.DeliveryStatus, notes string) error {
	body := map[string]string{
		"orderStatus":    orderStatus.String(),
		"deliveryStatus": deliveryStatus.String(),
	}
	if notes != "" {
		body["deliveryNotes"] = notes
	}

	return r.client.put(ctx, "/api/delivery/status/"+orderID, body, nil)
}
