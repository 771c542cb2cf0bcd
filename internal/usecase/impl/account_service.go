package impl

import (
	"context"
	"log/slog"
	"net/http"

	"maison/internal/domain/entity"
	domainerrors "maison/internal/domain/errors"
	"maison/internal/domain/repository"
	"maison/internal/domain/service"
	"maison/internal/errors"
	"maison/internal/usecase"
)

type accountService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAccountService creates the account usecase.
func NewAccountService(userRepo repository.UserRepository, logger *slog.Logger) usecase.AccountUsecase {
	return &accountService{userRepo: userRepo, logger: logger}
}

// EnsureUser returns the backend record for a signed-in identity, creating a
// regular shopper record on first sign-in. The role always comes from the
// backend, never from the token.
func (s *accountService) EnsureUser(ctx context.Context, identity *service.IdentityUser) (*entity.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, identity.Email)
	if err == nil {
		return user, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	created, err := s.userRepo.CreateUser(ctx, &entity.User{
		Name:     identity.Name,
		Email:    identity.Email,
		Photo:    identity.Picture,
		Role:     entity.RoleUser,
		IsActive: true,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("created backend record for first sign-in",
		slog.String("email", identity.Email), slog.String("provider", identity.Provider))

	return created, nil
}

func (s *accountService) GetProfile(ctx context.Context, email string) (*entity.User, error) {
	return s.userRepo.GetUserByEmail(ctx, email)
}

func (s *accountService) UpdateProfile(ctx context.Context, user *entity.User) (*entity.User, error) {
	return s.userRepo.UpdateUser(ctx, user)
}

func isNotFound(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() == http.StatusNotFound
	}

	return false
}
