package handler

import (
	"net/http"

	"maison/internal/delivery/http/response"
	"maison/internal/domain/entity"
	"maison/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler serves the admin console: the aggregated snapshot, the
// delivery workflow and order administration.
type DashboardHandler struct {
	dashboard usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(dashboard usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Snapshot returns the current view-state without touching the backend.
func (h *DashboardHandler) Snapshot(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dashboard.Snapshot(), "")
}

// Refresh refetches every aggregate from the backend.
func (h *DashboardHandler) Refresh(c echo.Context) error {
	snapshot, err := h.dashboard.Refresh(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Dashboard refreshed")
}

// PendingDeliveries lists orders still needing courier attention.
func (h *DashboardHandler) PendingDeliveries(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dashboard.PendingDeliveries(), "")
}

// OrdersByDeliveryStatus lists orders in one delivery state, backend-fresh.
func (h *DashboardHandler) OrdersByDeliveryStatus(c echo.Context) error {
	status := entity.DeliveryStatus(c.Param("status"))

	orders, err := h.dashboard.OrdersByDeliveryStatus(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// ApplyDeliveryAction requests one delivery transition for an order.
func (h *DashboardHandler) ApplyDeliveryAction(c echo.Context) error {
	var input *usecase.DeliveryActionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery action input")
	}
	// The binder leaves input nil for an empty or null body.
	if input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery action input")
	}

	order, err := h.dashboard.ApplyDeliveryAction(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Delivery action applied")
}

// DeleteOrder removes an order permanently.
func (h *DashboardHandler) DeleteOrder(c echo.Context) error {
	if err := h.dashboard.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted")
}
