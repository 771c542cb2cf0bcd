package handler

import (
	"net/http"

	"maison/internal/delivery/http/middleware"
	"maison/internal/delivery/http/response"
	"maison/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves the signed-in shopper's profile.
type AccountHandler struct {
	accounts usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accounts usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Me returns the backend record for the verified identity, creating it on
// first sign-in.
func (h *AccountHandler) Me(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	user, err := h.accounts.EnsureUser(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Photo string `json:"photo"`
}

// UpdateProfile updates the mutable profile fields. Email never changes.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.IdentityFrom(c)
	ctx := c.Request().Context()

	user, err := h.accounts.GetProfile(ctx, identity.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Photo = req.Photo

	updated, err := h.accounts.UpdateProfile(ctx, user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Profile updated successfully")
}
