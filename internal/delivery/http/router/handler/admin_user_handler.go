package handler

import (
	"net/http"

	"maison/internal/delivery/http/response"
	"maison/internal/domain/entity"
	domainerrors "maison/internal/domain/errors"
	"maison/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminUserHandler serves the customer administration screen.
type AdminUserHandler struct {
	dashboard usecase.DashboardUsecase
	accounts  usecase.AccountUsecase
}

// NewAdminUserHandler is the constructor for AdminUserHandler, injected by Fx.
func NewAdminUserHandler(dashboard usecase.DashboardUsecase, accounts usecase.AccountUsecase) *AdminUserHandler {
	return &AdminUserHandler{dashboard: dashboard, accounts: accounts}
}

type updateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required"`
	IsActive bool   `json:"isActive"`
}

// UpdateUser edits a customer record, including the role.
func (h *AdminUserHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	role := entity.Role(req.Role)
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role: " + req.Role)
	}

	ctx := c.Request().Context()
	email := c.Param("email")

	user, err := h.accounts.GetProfile(ctx, email)
	if err != nil {
		return errors.WithStack(err)
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Role = role
	user.IsActive = req.IsActive

	updated, err := h.dashboard.UpdateUser(ctx, user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "User updated")
}

// DeleteUser removes a customer record.
func (h *AdminUserHandler) DeleteUser(c echo.Context) error {
	if err := h.dashboard.DeleteUser(c.Request().Context(), c.Param("email")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted")
}
