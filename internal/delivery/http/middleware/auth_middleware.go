package middleware

import (
	"strings"

	deliverycontext "maison/internal/delivery/context"
	"maison/internal/domain/entity"
	domainerrors "maison/internal/domain/errors"
	"maison/internal/domain/service"
	"maison/internal/usecase"

	"github.com/labstack/echo/v4"
)

const keyCurrentUser = "current_user"

// AuthMiddleware gates routes on identity-provider tokens. The provider owns
// sessions entirely; this middleware only verifies the presented ID token and
// consults the backend record for the role.
type AuthMiddleware struct {
	identitySvc service.IdentityService
	accounts    usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identitySvc service.IdentityService, accounts usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{identitySvc: identitySvc, accounts: accounts}
}

// Authenticate validates the bearer ID token and stores the verified
// identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header must be a Bearer token")
		}

		identity, err := m.identitySvc.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WithDetails(err.Error())
		}

		c.Set(string(deliverycontext.KeyIdentity), identity)

		return next(c)
	}
}

// RequireAdmin authorizes against the backend user record, never the token.
// The role is re-fetched on every request so a demoted administrator loses
// access immediately. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := IdentityFrom(c)
		if identity == nil {
			return domainerrors.ErrUnauthenticated
		}

		user, err := m.accounts.GetProfile(c.Request().Context(), identity.Email)
		if err != nil {
			// A failed role check is not the same as a denied one; the
			// client shows a retry hint instead of an access wall.
			return domainerrors.ErrRoleCheckFailed.WithDetails(err.Error())
		}

		if !user.IsAdmin() {
			return domainerrors.ErrAccessDenied
		}

		c.Set(keyCurrentUser, user)

		return next(c)
	}
}

// IdentityFrom returns the verified identity stored by Authenticate, or nil.
func IdentityFrom(c echo.Context) *service.IdentityUser {
	identity, _ := c.Get(string(deliverycontext.KeyIdentity)).(*service.IdentityUser)

	return identity
}

// CurrentUserFrom returns the backend user record stored by RequireAdmin, or nil.
func CurrentUserFrom(c echo.Context) *entity.User {
	user, _ := c.Get(keyCurrentUser).(*entity.User)

	return user
}
