package handler

import (
	"net/http"
	"strconv"

	"maison/internal/delivery/http/response"
	"maison/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StorefrontHandler serves the public catalog read paths.
type StorefrontHandler struct {
	catalog usecase.CatalogUsecase
}

// NewStorefrontHandler is the constructor for StorefrontHandler, injected by Fx.
func NewStorefrontHandler(catalog usecase.CatalogUsecase) *StorefrontHandler {
	return &StorefrontHandler{catalog: catalog}
}

// ListCategories returns the category grid.
func (h *StorefrontHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// ListProducts returns the product grid, optionally filtered by category,
// featured flag and a first-N limit.
func (h *StorefrontHandler) ListProducts(c echo.Context) error {
	input := usecase.ListProductsInput{
		Category: c.QueryParam("category"),
	}
	if featured := c.QueryParam("featured"); featured != "" {
		input.Featured, _ = strconv.ParseBool(featured)
	}
	if limit := c.QueryParam("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return response.BindingError(c, "INVALID_INPUT", "limit must be a non-negative integer")
		}
		input.Limit = n
	}

	products, err := h.catalog.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct returns one product for the detail page.
func (h *StorefrontHandler) GetProduct(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}
