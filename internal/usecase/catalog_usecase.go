// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"maison/internal/domain/entity"
)

// ListProductsInput narrows the storefront product listing.
type ListProductsInput struct {
	Category string
	Featured bool
	Limit    int
}

// CatalogUsecase serves the storefront read paths: the category grid, the
// product grids and the product detail page. Pure read-through, no caching.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListProducts(ctx context.Context, input ListProductsInput) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
}
