package handler

import (
	"net/http"

	"maison/internal/delivery/http/response"
	"maison/internal/domain/entity"
	"maison/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminCatalogHandler serves the product and category administration forms.
type AdminCatalogHandler struct {
	dashboard usecase.DashboardUsecase
}

// NewAdminCatalogHandler is the constructor for AdminCatalogHandler, injected by Fx.
func NewAdminCatalogHandler(dashboard usecase.DashboardUsecase) *AdminCatalogHandler {
	return &AdminCatalogHandler{dashboard: dashboard}
}

type productRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Category    string   `json:"category" validate:"required"`
	InStock     bool     `json:"inStock"`
	Featured    bool     `json:"featured"`
}

func (r *productRequest) toEntity(id string) *entity.Product {
	return &entity.Product{
		ID:          id,
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Images:      r.Images,
		Category:    r.Category,
		InStock:     r.InStock,
		Featured:    r.Featured,
	}
}

// CreateProduct adds a catalog item.
func (h *AdminCatalogHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.dashboard.CreateProduct(c.Request().Context(), req.toEntity(""))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// UpdateProduct edits a catalog item.
func (h *AdminCatalogHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.dashboard.UpdateProduct(c.Request().Context(), req.toEntity(c.Param("id")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// DeleteProduct removes a catalog item.
func (h *AdminCatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.dashboard.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Gradient    string `json:"gradient"`
}

// CreateCategory adds a storefront category.
func (h *AdminCatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.dashboard.CreateCategory(c.Request().Context(), &entity.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Gradient:    req.Gradient,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

// UpdateCategory edits a storefront category.
func (h *AdminCatalogHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.dashboard.UpdateCategory(c.Request().Context(), &entity.Category{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Gradient:    req.Gradient,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated")
}

// DeleteCategory removes a storefront category.
func (h *AdminCatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.dashboard.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}
