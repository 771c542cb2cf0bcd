package repository

import (
	"context"

	"maison/internal/domain/entity"
)

// CartRepository reads the server-held cart for a shopper. The cart is
// ephemeral backend state; checkout consumes it in one shot.
type CartRepository interface {
	GetCart(ctx context.Context, email string) ([]entity.CartItem, error)
}
