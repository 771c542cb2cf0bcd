package service

import (
	"context"
	"time"
)

// Order event types published to interested consumers (analytics, ops).
const (
	EventOrderPlaced          = "order.placed"
	EventOrderDeliveryUpdated = "order.delivery_updated"
)

// OrderEvent describes a noteworthy change to an order. Events are published
// best-effort and never block or fail the originating request.
type OrderEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	OrderID        string    `json:"order_id"`
	UserEmail      string    `json:"user_email"`
	OrderStatus    string    `json:"order_status"`
	DeliveryStatus string    `json:"delivery_status"`
	Total          float64   `json:"total"`
	RequestID      string    `json:"request_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher publishes order events to the configured transport.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error
	Close() error
}
