package impl

import (
	"context"

	"maison/internal/domain/entity"
	"maison/internal/domain/repository"
	"maison/internal/usecase"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates the storefront catalog usecase.
func NewCatalogService(catalogRepo repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return s.catalogRepo.ListCategories(ctx)
}

func (s *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]*entity.Product, error) {
	return s.catalogRepo.ListProducts(ctx, repository.ProductQuery{
		Category: input.Category,
		Featured: input.Featured,
		Limit:    input.Limit,
	})
}

func (s *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	return s.catalogRepo.GetProduct(ctx, productID)
}
