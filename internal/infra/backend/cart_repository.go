package backend

import (
	"context"

	"maison/internal/domain/entity"
	"maison/internal/domain/repository"
)

type cartRepository struct {
	client *Client
}

// NewCartRepository creates a backend-API-backed cart repository.
func NewCartRepository(client *Client) repository.CartRepository {
	return &cartRepository{client: client}
}

func (r *cartRepository) GetCart(ctx context.Context, email string) ([]entity.CartItem, error) {
	var items []entity.CartItem
	if err := r.client.get(ctx, "/api/cart", queryValues("email", email), &items); err != nil {
		return nil, err
	}

	return items, nil
}
