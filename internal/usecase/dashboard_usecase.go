package usecase

import (
	"context"
	"time"

	"maison/internal/domain/entity"
)

// DeliveryAction is an administrator's intended transition for an order.
// The backend enforces the lifecycle; the dashboard only requests it.
type DeliveryAction string

const (
	ActionAssign         DeliveryAction = "assign"
	ActionShip           DeliveryAction = "ship"
	ActionOutForDelivery DeliveryAction = "out_for_delivery"
	ActionDeliver        DeliveryAction = "deliver"
	ActionCustomStatus   DeliveryAction = "custom_status"
)

// DeliveryActionInput carries the action-specific data.
type DeliveryActionInput struct {
	Action DeliveryAction `json:"action"`

	// Courier is required for assign.
	Courier string `json:"courier,omitempty"`

	// OrderStatus and DeliveryStatus form the custom_status pair.
	OrderStatus    entity.OrderStatus    `json:"orderStatus,omitempty"`
	DeliveryStatus entity.DeliveryStatus `json:"deliveryStatus,omitempty"`
	Notes          string                `json:"notes,omitempty"`
}

// DashboardSnapshot is the admin console's aggregated view-state. It mirrors
// backend truth, locally patched after confirmed mutations; any full refresh
// replaces it wholesale (last fetch wins).
type DashboardSnapshot struct {
	Orders        []*entity.Order       `json:"orders"`
	Products      []*entity.Product     `json:"products"`
	Categories    []*entity.Category    `json:"categories"`
	Users         []*entity.User        `json:"users"`
	OrderStats    *entity.OrderStats    `json:"orderStats,omitempty"`
	DeliveryStats *entity.DeliveryStats `json:"deliveryStats,omitempty"`
	RefreshedAt   time.Time             `json:"refreshedAt"`
}

// DashboardUsecase drives the admin console: aggregate refresh, the
// delivery-status lifecycle actions with optimistic local patches, and
// catalog and user administration.
type DashboardUsecase interface {
	// Refresh refetches every aggregate from the backend and replaces the
	// snapshot entirely.
	Refresh(ctx context.Context) (*DashboardSnapshot, error)

	// Snapshot returns the current view-state without touching the backend.
	Snapshot() *DashboardSnapshot

	// ApplyDeliveryAction requests a transition and, only on success,
	// patches the snapshot's copy of the order and schedules a delayed
	// refresh of the aggregate delivery counters.
	ApplyDeliveryAction(ctx context.Context, orderID string, input *DeliveryActionInput) (*entity.Order, error)

	// PendingDeliveries filters the snapshot to orders still in flight.
	PendingDeliveries() []*entity.Order

	// OrdersByDeliveryStatus fetches the authoritative per-status listing.
	OrdersByDeliveryStatus(ctx context.Context, status entity.DeliveryStatus) ([]*entity.Order, error)

	DeleteOrder(ctx context.Context, orderID string) error
	DeleteProduct(ctx context.Context, productID string) error
	DeleteCategory(ctx context.Context, categoryID string) error
	DeleteUser(ctx context.Context, email string) error

	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error)
	UpdateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error)
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
}
