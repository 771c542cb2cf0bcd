package impl

import (
	"context"
	"log/slog"
	"time"

	"maison/config"
	deliverycontext "maison/internal/delivery/context"
	"maison/internal/domain/entity"
	domainerrors "maison/internal/domain/errors"
	"maison/internal/domain/lifecycle"
	"maison/internal/domain/repository"
	"maison/internal/domain/service"
	"maison/internal/errors"
	"maison/internal/usecase"

	"github.com/google/uuid"
)

type dashboardService struct {
	state       *dashboardState
	orderRepo   repository.OrderRepository
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
	publisher   service.EventPublisher
	logger      *slog.Logger

	statsRefreshDelay time.Duration
}

// NewDashboardService creates the admin console usecase. The in-memory state
// container starts empty; callers are expected to Refresh before reading.
func NewDashboardService(
	cfg *config.Config,
	orderRepo repository.OrderRepository,
	catalogRepo repository.CatalogRepository,
	userRepo repository.UserRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		state:             newDashboardState(),
		orderRepo:         orderRepo,
		catalogRepo:       catalogRepo,
		userRepo:          userRepo,
		publisher:         publisher,
		logger:            logger,
		statsRefreshDelay: cfg.Dashboard.StatsRefreshDelay,
	}
}

// Refresh re-fetches every dashboard collection from the backend. Each fetch
// replaces its own slice independently, so one failing endpoint does not
// blank out the others; all failures are joined into the returned error.
func (s *dashboardService) Refresh(ctx context.Context) (*usecase.DashboardSnapshot, error) {
	var errs []error

	if orders, err := s.orderRepo.ListOrders(ctx); err != nil {
		errs = append(errs, errors.Wrap(err, "refresh orders"))
	} else {
		s.state.setOrders(orders)
	}

	if products, err := s.catalogRepo.ListProducts(ctx, repository.ProductQuery{}); err != nil {
		errs = append(errs, errors.Wrap(err, "refresh products"))
	} else {
		s.state.setProducts(products)
	}

	if categories, err := s.catalogRepo.ListCategories(ctx); err != nil {
		errs = append(errs, errors.Wrap(err, "refresh categories"))
	} else {
		s.state.setCategories(categories)
	}

	if users, err := s.userRepo.ListUsers(ctx); err != nil {
		errs = append(errs, errors.Wrap(err, "refresh users"))
	} else {
		s.state.setUsers(users)
	}

	if stats, err := s.orderRepo.OrderStats(ctx); err != nil {
		errs = append(errs, errors.Wrap(err, "refresh order stats"))
	} else {
		s.state.setOrderStats(stats)
	}

	if stats, err := s.orderRepo.DeliveryStats(ctx); err != nil {
		errs = append(errs, errors.Wrap(err, "refresh delivery stats"))
	} else {
		s.state.setDeliveryStats(stats)
	}

	return s.state.snapshot(), errors.Join(errs...)
}

func (s *dashboardService) Snapshot() *usecase.DashboardSnapshot {
	return s.state.snapshot()
}

func (s *dashboardService) PendingDeliveries() []*entity.Order {
	return s.state.pendingDeliveries()
}

func (s *dashboardService) OrdersByDeliveryStatus(ctx context.Context, status entity.DeliveryStatus) ([]*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatusPair.WithDetails("unknown delivery status: " + string(status))
	}

	return s.orderRepo.ListOrdersByDeliveryStatus(ctx, status)
}

// ApplyDeliveryAction runs one delivery-workflow command against the backend
// and, only after the backend confirms it, applies the matching patch to the
// local order list. A failed command leaves local state byte-for-byte as it
// was.
func (s *dashboardService) ApplyDeliveryAction(ctx context.Context, orderID string, input *usecase.DeliveryActionInput) (*entity.Order, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("delivery action input is required")
	}

	patch, err := s.patchForAction(input)
	if err != nil {
		return nil, err
	}

	if err := s.executeAction(ctx, orderID, input); err != nil {
		return nil, domainerrors.NewDeliveryActionError(string(input.Action), err)
	}

	patched, ok := s.state.applyOrderPatch(orderID, patch)
	if !ok {
		// Backend accepted the action but the order is not in the local
		// snapshot (stale console). The next refresh picks it up.
		s.logger.Warn("delivery action applied to order missing from snapshot",
			slog.String("order_id", orderID),
			slog.String("action", string(input.Action)))
		patched = &entity.Order{ID: orderID}
	}

	s.publishDeliveryEvent(ctx, patched, input)
	s.scheduleStatsRefresh()

	return patched, nil
}

func (s *dashboardService) patchForAction(input *usecase.DeliveryActionInput) (orderPatch, error) {
	switch input.Action {
	case usecase.ActionAssign:
		if input.Courier == "" {
			return orderPatch{}, domainerrors.ErrCourierNameRequired
		}

		return orderPatch{
			orderStatus:    statusPtr(entity.OrderStatusProcessing),
			deliveryStatus: deliveryPtr(entity.DeliveryStatusAssigned),
			assignedTo:     &input.Courier,
		}, nil

	case usecase.ActionShip:
		return orderPatch{
			orderStatus:    statusPtr(entity.OrderStatusShipped),
			deliveryStatus: deliveryPtr(entity.DeliveryStatusInTransit),
		}, nil

	case usecase.ActionOutForDelivery:
		return orderPatch{
			deliveryStatus: deliveryPtr(entity.DeliveryStatusOutForDelivery),
		}, nil

	case usecase.ActionDeliver:
		now := time.Now()

		return orderPatch{
			orderStatus:    statusPtr(entity.OrderStatusDelivered),
			deliveryStatus: deliveryPtr(entity.DeliveryStatusDelivered),
			deliveredAt:    &now,
		}, nil

	case usecase.ActionCustomStatus:
		if !input.OrderStatus.IsValid() || !input.DeliveryStatus.IsValid() {
			return orderPatch{}, domainerrors.ErrInvalidStatusPair.WithDetails(
				"orderStatus=" + string(input.OrderStatus) + " deliveryStatus=" + string(input.DeliveryStatus))
		}

		patch := orderPatch{
			orderStatus:    statusPtr(input.OrderStatus),
			deliveryStatus: deliveryPtr(input.DeliveryStatus),
		}
		if input.Notes != "" {
			patch.notes = &input.Notes
		}

		return patch, nil

	default:
		return orderPatch{}, domainerrors.ErrUnknownDeliveryAction.WithDetails(string(input.Action))
	}
}

func (s *dashboardService) executeAction(ctx context.Context, orderID string, input *usecase.DeliveryActionInput) error {
	switch input.Action {
	case usecase.ActionAssign:
		return s.orderRepo.AssignDelivery(ctx, orderID, input.Courier)
	case usecase.ActionShip:
		return s.orderRepo.MarkShipped(ctx, orderID)
	case usecase.ActionOutForDelivery:
		return s.orderRepo.MarkOutForDelivery(ctx, orderID)
	case usecase.ActionDeliver:
		return s.orderRepo.MarkDelivered(ctx, orderID)
	case usecase.ActionCustomStatus:
		return s.orderRepo.SetCustomStatus(ctx, orderID, input.OrderStatus, input.DeliveryStatus, input.Notes)
	default:
		return domainerrors.ErrUnknownDeliveryAction.WithDetails(string(input.Action))
	}
}

// scheduleStatsRefresh re-pulls delivery stats shortly after an action so the
// summary cards catch up with the backend's recalculated counts.
func (s *dashboardService) scheduleStatsRefresh() {
	time.AfterFunc(s.statsRefreshDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		stats, err := s.orderRepo.DeliveryStats(ctx)
		if err != nil {
			s.logger.Warn("delayed delivery stats refresh failed", slog.Any("error", err))

			return
		}
		s.state.setDeliveryStats(stats)
	})
}

func (s *dashboardService) publishDeliveryEvent(ctx context.Context, order *entity.Order, _ *usecase.DeliveryActionInput) {
	event := &service.OrderEvent{
		EventID:        uuid.NewString(),
		EventType:      service.EventOrderDeliveryUpdated,
		OrderID:        order.ID,
		UserEmail:      order.UserEmail,
		OrderStatus:    string(order.OrderStatus),
		DeliveryStatus: string(order.DeliveryStatus),
		Total:          order.Total,
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt:     time.Now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		// Event delivery is best effort; the console flow must not fail on it.
		s.logger.Warn("publish delivery event failed",
			slog.String("order_id", order.ID), slog.Any("error", err))
	}
}

func (s *dashboardService) DeleteOrder(ctx context.Context, orderID string) error {
	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	s.state.removeOrder(orderID)
	s.scheduleStatsRefresh()

	return nil
}

func (s *dashboardService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	created, err := s.catalogRepo.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	s.state.upsertProduct(created)

	return created, nil
}

func (s *dashboardService) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	updated, err := s.catalogRepo.UpdateProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	s.state.upsertProduct(updated)

	return updated, nil
}

func (s *dashboardService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.catalogRepo.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	s.state.removeProduct(productID)

	return nil
}

func (s *dashboardService) CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	created, err := s.catalogRepo.CreateCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.state.upsertCategory(created)

	return created, nil
}

func (s *dashboardService) UpdateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	updated, err := s.catalogRepo.UpdateCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.state.upsertCategory(updated)

	return updated, nil
}

func (s *dashboardService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.catalogRepo.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}
	s.state.removeCategory(categoryID)

	return nil
}

func (s *dashboardService) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	updated, err := s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.state.upsertUser(updated)

	return updated, nil
}

func (s *dashboardService) DeleteUser(ctx context.Context, email string) error {
	if err := s.userRepo.DeleteUser(ctx, email); err != nil {
		return err
	}
	s.state.removeUser(email)

	return nil
}

func statusPtr(s entity.OrderStatus) *entity.OrderStatus { return &s }

func deliveryPtr(s entity.DeliveryStatus) *entity.DeliveryStatus { return &s }
