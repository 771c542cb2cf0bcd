package backend

import (
	"context"
	"net/url"

	"maison/internal/domain/entity"
	"maison/internal/domain/repository"
)

type catalogRepository struct {
	client *Client
}

// NewCatalogRepository creates a backend-API-backed catalog repository.
func NewCatalogRepository(client *Client) repository.CatalogRepository {
	return &catalogRepository{client: client}
}

func (r *catalogRepository) ListProducts(ctx context.Context, query repository.ProductQuery) ([]*entity.Product, error) {
	values := url.Values{}
	if query.Category != "" {
		values.Set("category", query.Category)
	}
	if query.Featured {
		values.Set("featured", "true")
	}

	var products []*entity.Product
	if err := r.client.get(ctx, "/api/products", values, &products); err != nil {
		return nil, err
	}

	// The backend has no pagination; listing pages take the first N.
	if query.Limit > 0 && len(products) > query.Limit {
		products = products[:query.Limit]
	}

	return products, nil
}

func (r *catalogRepository) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	var product entity.Product
	if err := r.client.get(ctx, "/api/products/"+productID, nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *catalogRepository) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var created entity.Product
	if err := r.client.post(ctx, "/api/products", product, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *catalogRepository) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var updated entity.Product
	if err := r.client.put(ctx, "/api/products/"+product.ID, product, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *catalogRepository) DeleteProduct(ctx context.Context, productID string) error {
	return r.client.delete(ctx, "/api/products/"+productID)
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	if err := r.client.get(ctx, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	if category.ID == "" {
		category.ID = entity.Slugify(category.Name)
	}

	var created entity.Category
	if err := r.client.post(ctx, "/api/categories", category, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *catalogRepository) UpdateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	var updated entity.Category
	if err := r.client.put(ctx, "/api/categories/"+category.ID, category, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *catalogRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return r.client.delete(ctx, "/api/categories/"+categoryID)
}

// queryValues builds a single-pair query string.
func queryValues(key, value string) url.Values {
	values := url.Values{}
	values.Set(key, value)

	return values
}
