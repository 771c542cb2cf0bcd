package usecase

import (
	"context"

	"maison/internal/domain/entity"
	"maison/internal/domain/service"
)

// AccountUsecase bridges identity-provider sessions and backend user
// records. The provider owns authentication; the backend owns the profile
// and the role consulted by the admin gate.
type AccountUsecase interface {
	// EnsureUser returns the backend record for a signed-in identity,
	// creating it on first sign-in.
	EnsureUser(ctx context.Context, identity *service.IdentityUser) (*entity.User, error)

	// GetProfile returns the backend record for an email.
	GetProfile(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile updates mutable profile fields. Email never changes.
	UpdateProfile(ctx context.Context, user *entity.User) (*entity.User, error)
}
