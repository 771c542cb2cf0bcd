package repository

import (
	"context"

	"maison/internal/domain/entity"
)

// UserRepository covers backend user records. Users are keyed by email
// everywhere except the admin listing; email never changes after creation.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, email string) error
}
