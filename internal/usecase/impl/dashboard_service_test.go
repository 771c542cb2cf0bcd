package impl

import (
	"context"
	"testing"
	"time"

	"maison/internal/domain/entity"
	domainerrors "maison/internal/domain/errors"
	"maison/internal/domain/repository"
	"maison/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dashboardFixtures holds all test dependencies for dashboard service tests.
type dashboardFixtures struct {
	service     *dashboardService
	orderRepo   *mockOrderRepository
	catalogRepo *mockCatalogRepository
	userRepo    *mockUserRepository
	publisher   *mockEventPublisher
}

func createTestDashboardService(t *testing.T) dashboardFixtures {
	t.Helper()

	orderRepo := new(mockOrderRepository)
	catalogRepo := new(mockCatalogRepository)
	userRepo := new(mockUserRepository)
	publisher := new(mockEventPublisher)

	svc := NewDashboardService(
		newTestConfig(time.Millisecond),
		orderRepo, catalogRepo, userRepo, publisher,
		newDiscardLogger(),
	).(*dashboardService)

	// The delayed stats refresh fires on its own timer; allow it in every
	// test without requiring it.
	orderRepo.On("DeliveryStats", mock.Anything).Return(&entity.DeliveryStats{Pending: 7}, nil).Maybe()
	publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Maybe()

	return dashboardFixtures{
		service:     svc,
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

func seedOrders(fx dashboardFixtures, orders ...*entity.Order) {
	fx.service.state.setOrders(orders)
}

func testOrder(id string) *entity.Order {
	return &entity.Order{
		ID:             id,
		UserEmail:      "shopper@example.com",
		Total:          1280,
		OrderStatus:    entity.OrderStatusConfirmed,
		PaymentStatus:  entity.PaymentStatusPending,
		DeliveryStatus: entity.DeliveryStatusPending,
		CreatedAt:      time.Now().Add(-time.Hour),
	}
}

func TestDashboardService_Refresh_PartialFailure(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()

	fx.orderRepo.On("ListOrders", ctx).Return(nil, errors.New("backend down"))
	fx.orderRepo.On("OrderStats", ctx).Return(&entity.OrderStats{TotalOrders: 3}, nil)
	fx.catalogRepo.On("ListProducts", ctx, repository.ProductQuery{}).
		Return([]*entity.Product{{ID: "p1", Name: "Linen Shirt"}}, nil)
	fx.catalogRepo.On("ListCategories", ctx).
		Return([]*entity.Category{{ID: "c1", Name: "Shirts"}}, nil)
	fx.userRepo.On("ListUsers", ctx).
		Return([]*entity.User{{Email: "shopper@example.com"}}, nil)

	snap, err := fx.service.Refresh(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh orders")

	// The failing fetch must not blank out the slices that succeeded.
	assert.Empty(t, snap.Orders)
	assert.Len(t, snap.Products, 1)
	assert.Len(t, snap.Categories, 1)
	assert.Len(t, snap.Users, 1)
	assert.Equal(t, 3, snap.OrderStats.TotalOrders)
}

func TestDashboardService_ApplyDeliveryAction_AssignPatchesOnlyTarget(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	seedOrders(fx, testOrder("order-1"), testOrder("order-2"))

	fx.orderRepo.On("AssignDelivery", ctx, "order-1", "Rahim").Return(nil)

	patched, err := fx.service.ApplyDeliveryAction(ctx, "order-1", &usecase.DeliveryActionInput{
		Action:  usecase.ActionAssign,
		Courier: "Rahim",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusAssigned, patched.DeliveryStatus)
	assert.Equal(t, entity.OrderStatusProcessing, patched.OrderStatus)
	assert.Equal(t, "Rahim", patched.DeliveryAssignedTo)

	snap := fx.service.Snapshot()
	require.Len(t, snap.Orders, 2)
	assert.Equal(t, entity.DeliveryStatusAssigned, snap.Orders[0].DeliveryStatus)

	// Untouched sibling keeps every field.
	assert.Equal(t, entity.DeliveryStatusPending, snap.Orders[1].DeliveryStatus)
	assert.Equal(t, entity.OrderStatusConfirmed, snap.Orders[1].OrderStatus)
	assert.Empty(t, snap.Orders[1].DeliveryAssignedTo)
}

func TestDashboardService_ApplyDeliveryAction_AssignRequiresCourier(t *testing.T) {
	fx := createTestDashboardService(t)
	seedOrders(fx, testOrder("order-1"))

	_, err := fx.service.ApplyDeliveryAction(context.Background(), "order-1", &usecase.DeliveryActionInput{
		Action: usecase.ActionAssign,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCourierNameRequired)

	fx.orderRepo.AssertNotCalled(t, "AssignDelivery", mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardService_ApplyDeliveryAction_FailureLeavesStateUntouched(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	seedOrders(fx, testOrder("order-1"))

	fx.orderRepo.On("AssignDelivery", ctx, "order-1", "Rahim").
		Return(errors.New("order already assigned"))

	_, err := fx.service.ApplyDeliveryAction(ctx, "order-1", &usecase.DeliveryActionInput{
		Action:  usecase.ActionAssign,
		Courier: "Rahim",
	})
	require.Error(t, err)

	var actionErr *domainerrors.DeliveryActionError
	require.ErrorAs(t, err, &actionErr)
	assert.Equal(t, "assign", actionErr.Action())

	snap := fx.service.Snapshot()
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, entity.DeliveryStatusPending, snap.Orders[0].DeliveryStatus)
	assert.Equal(t, entity.OrderStatusConfirmed, snap.Orders[0].OrderStatus)
	assert.Empty(t, snap.Orders[0].DeliveryAssignedTo)
}

func TestDashboardService_ApplyDeliveryAction_DeliverStampsTimeAndLeavesPendingView(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	order := testOrder("order-1")
	order.DeliveryStatus = entity.DeliveryStatusOutForDelivery
	seedOrders(fx, order, testOrder("order-2"))

	fx.orderRepo.On("MarkDelivered", ctx, "order-1").Return(nil)

	patched, err := fx.service.ApplyDeliveryAction(ctx, "order-1", &usecase.DeliveryActionInput{
		Action: usecase.ActionDeliver,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, patched.OrderStatus)
	assert.Equal(t, entity.DeliveryStatusDelivered, patched.DeliveryStatus)
	require.NotNil(t, patched.DeliveredAt)
	assert.WithinDuration(t, time.Now(), *patched.DeliveredAt, time.Second)

	pending := fx.service.PendingDeliveries()
	require.Len(t, pending, 1)
	assert.Equal(t, "order-2", pending[0].ID)
}

func TestDashboardService_ApplyDeliveryAction_DelayedStatsRefresh(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	seedOrders(fx, testOrder("order-1"))

	fx.orderRepo.On("MarkShipped", ctx, "order-1").Return(nil)

	_, err := fx.service.ApplyDeliveryAction(ctx, "order-1", &usecase.DeliveryActionInput{
		Action: usecase.ActionShip,
	})
	require.NoError(t, err)

	// Stats are not refreshed inline; they catch up after the delay.
	assert.Eventually(t, func() bool {
		stats := fx.service.Snapshot().DeliveryStats

		return stats != nil && stats.Pending == 7
	}, time.Second, 5*time.Millisecond)
}

func TestDashboardService_ApplyDeliveryAction_CustomStatusRejectsUnknownPair(t *testing.T) {
	fx := createTestDashboardService(t)
	seedOrders(fx, testOrder("order-1"))

	_, err := fx.service.ApplyDeliveryAction(context.Background(), "order-1", &usecase.DeliveryActionInput{
		Action:         usecase.ActionCustomStatus,
		OrderStatus:    "misplaced",
		DeliveryStatus: entity.DeliveryStatusReturned,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusPair)

	fx.orderRepo.AssertNotCalled(t, "SetCustomStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardService_ApplyDeliveryAction_CustomStatusPatchesPair(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	seedOrders(fx, testOrder("order-1"))

	fx.orderRepo.On("SetCustomStatus", ctx, "order-1",
		entity.OrderStatusCancelled, entity.DeliveryStatusReturned, "refused at door").
		Return(nil)

	patched, err := fx.service.ApplyDeliveryAction(ctx, "order-1", &usecase.DeliveryActionInput{
		Action:         usecase.ActionCustomStatus,
		OrderStatus:    entity.OrderStatusCancelled,
		DeliveryStatus: entity.DeliveryStatusReturned,
		Notes:          "refused at door",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, patched.OrderStatus)
	assert.Equal(t, entity.DeliveryStatusReturned, patched.DeliveryStatus)
	assert.Equal(t, "refused at door", patched.DeliveryNotes)
}

func TestDashboardService_ApplyDeliveryAction_NilInput(t *testing.T) {
	fx := createTestDashboardService(t)
	seedOrders(fx, testOrder("order-1"))

	_, err := fx.service.ApplyDeliveryAction(context.Background(), "order-1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	snap := fx.service.Snapshot()
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, entity.DeliveryStatusPending, snap.Orders[0].DeliveryStatus)
}

func TestDashboardService_ApplyDeliveryAction_UnknownAction(t *testing.T) {
	fx := createTestDashboardService(t)

	_, err := fx.service.ApplyDeliveryAction(context.Background(), "order-1", &usecase.DeliveryActionInput{
		Action: "teleport",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownDeliveryAction)
}

func TestDashboardService_DeleteOrder_RemovesExactlyOne(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	seedOrders(fx, testOrder("order-1"), testOrder("order-2"))

	fx.orderRepo.On("DeleteOrder", ctx, "order-1").Return(nil)

	require.NoError(t, fx.service.DeleteOrder(ctx, "order-1"))

	snap := fx.service.Snapshot()
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, "order-2", snap.Orders[0].ID)
}

func TestDashboardService_DeleteOrder_FailureKeepsList(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	seedOrders(fx, testOrder("order-1"))

	fx.orderRepo.On("DeleteOrder", ctx, "order-1").Return(errors.New("backend down"))

	require.Error(t, fx.service.DeleteOrder(ctx, "order-1"))
	assert.Len(t, fx.service.Snapshot().Orders, 1)
}

func TestDashboardService_CreateProduct_UpsertsSnapshot(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()

	input := &entity.Product{Name: "Silk Scarf", Price: 950}
	created := &entity.Product{ID: "p9", Name: "Silk Scarf", Price: 950}
	fx.catalogRepo.On("CreateProduct", ctx, input).Return(created, nil)

	got, err := fx.service.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "p9", got.ID)

	snap := fx.service.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "p9", snap.Products[0].ID)
}

func TestDashboardService_OrdersByDeliveryStatus_RejectsUnknownStatus(t *testing.T) {
	fx := createTestDashboardService(t)

	_, err := fx.service.OrdersByDeliveryStatus(context.Background(), "lost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusPair)
}
