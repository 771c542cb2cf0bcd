// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// OrderStatus represents the customer-facing lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// PaymentStatus represents the payment state of an order. Payment processing
// itself is owned by the backend; this service only carries the value through.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// DeliveryStatus is the courier-facing sub-state of an order, distinct from
// but correlated with OrderStatus.
type DeliveryStatus string

const (
	DeliveryStatusPending        DeliveryStatus = "pending"
	DeliveryStatusAssigned       DeliveryStatus = "assigned"
	DeliveryStatusPickedUp       DeliveryStatus = "picked_up"
	DeliveryStatusInTransit      DeliveryStatus = "in_transit"
	DeliveryStatusOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryStatusDelivered      DeliveryStatus = "delivered"
	DeliveryStatusFailedDelivery DeliveryStatus = "failed_delivery"
	DeliveryStatusReturned       DeliveryStatus = "returned"
)

// IsValid checks if the DeliveryStatus is a known value.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusAssigned, DeliveryStatusPickedUp,
		DeliveryStatusInTransit, DeliveryStatusOutForDelivery,
		DeliveryStatusDelivered, DeliveryStatusFailedDelivery, DeliveryStatusReturned:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the delivery status ends the normal flow.
// failed_delivery and returned are reachable only through custom updates.
func (s DeliveryStatus) IsTerminal() bool {
	switch s {
	case DeliveryStatusDelivered, DeliveryStatusFailedDelivery, DeliveryStatusReturned:
		return true
	default:
		return false
	}
}

// String returns the string representation of the DeliveryStatus.
func (s DeliveryStatus) String() string {
	return string(s)
}

// OrderItem is a single purchased line item within an order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Image     string  `json:"image"`
}

// Order is a customer's placed purchase, tracked through fulfillment states.
// The backend owns the document and enforces every transition; this service
// carries the fields through and mirrors confirmed transitions locally.
type Order struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"userId"`
	UserEmail          string         `json:"userEmail"`
	UserName           string         `json:"userName"`
	Items              []OrderItem    `json:"items"`
	Total              float64        `json:"total"`
	OrderStatus        OrderStatus    `json:"orderStatus"`
	PaymentStatus      PaymentStatus  `json:"paymentStatus"`
	DeliveryStatus     DeliveryStatus `json:"deliveryStatus"`
	DeliveryAssignedTo string         `json:"deliveryAssignedTo,omitempty"`
	DeliveryNotes      string         `json:"deliveryNotes,omitempty"`
	Phone              string         `json:"phone,omitempty"`
	ShippingAddress    string         `json:"shippingAddress,omitempty"`
	City               string         `json:"city,omitempty"`
	DeliveryZone       string         `json:"deliveryZone,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeliveredAt        *time.Time     `json:"deliveredAt,omitempty"`
}

// IsPendingDelivery reports whether the order still needs courier attention.
func (o *Order) IsPendingDelivery() bool {
	return !o.DeliveryStatus.IsTerminal()
}

// PlacedOn reports whether the order was created on the given calendar day
// in that day's location.
func (o *Order) PlacedOn(day time.Time) bool {
	y1, m1, d1 := o.CreatedAt.In(day.Location()).Date()
	y2, m2, d2 := day.Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}

// OrderStats is the backend's aggregate order summary.
type OrderStats struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	PendingOrders int     `json:"pendingOrders"`
	TodaysOrders  int     `json:"todaysOrders"`
}

// DeliveryStats holds the slow-moving aggregate delivery counters shown on
// the dashboard. They reconcile with the backend via delayed refreshes,
// independently of per-order optimistic patches.
type DeliveryStats struct {
	Pending        int `json:"pending"`
	Assigned       int `json:"assigned"`
	PickedUp       int `json:"pickedUp"`
	InTransit      int `json:"inTransit"`
	OutForDelivery int `json:"outForDelivery"`
	Delivered      int `json:"delivered"`
	FailedDelivery int `json:"failedDelivery"`
	Returned       int `json:"returned"`
	Total          int `json:"total"`
}
