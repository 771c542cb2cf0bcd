package repository

import (
	"context"

	"maison/internal/domain/entity"
)

// ProductQuery narrows a product listing. Zero values mean "no filter";
// Limit caps the result to the first N entries, storefront style.
type ProductQuery struct {
	Category string
	Featured bool
	Limit    int
}

// CatalogRepository covers products and categories, for both the storefront
// read paths and the admin CRUD forms.
type CatalogRepository interface {
	ListProducts(ctx context.Context, query ProductQuery) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID string) error

	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error)
	UpdateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
