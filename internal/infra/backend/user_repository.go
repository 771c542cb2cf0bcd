package backend

import (
	"context"

	"maison/internal/domain/entity"
	"maison/internal/domain/repository"
)

type userRepository struct {
	client *Client
}

// NewUserRepository creates a backend-API-backed user repository.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.client.get(ctx, "/api/user/"+email, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	// Capital U is a wart in the backend route, kept for compatibility.
	if err := r.client.get(ctx, "/api/Users", nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	var created entity.User
	if err := r.client.post(ctx, "/api/newUser", user, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	var updated entity.User
	if err := r.client.put(ctx, "/api/user/"+user.Email, user, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, email string) error {
	return r.client.delete(ctx, "/api/user/"+email)
}
