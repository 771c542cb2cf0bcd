// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"maison/internal/delivery/http/middleware"
	"maison/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StorefrontHandler   *handler.StorefrontHandler
	CheckoutHandler     *handler.CheckoutHandler
	AccountHandler      *handler.AccountHandler
	DashboardHandler    *handler.DashboardHandler
	AdminCatalogHandler *handler.AdminCatalogHandler
	AdminUserHandler    *handler.AdminUserHandler
	UploadHandler       *handler.UploadHandler
	ReportHandler       *handler.ReportHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes
	storeGroup := e.Group("/store")
	{
		storeGroup.GET("/categories", r.params.StorefrontHandler.ListCategories)
		storeGroup.GET("/products", r.params.StorefrontHandler.ListProducts)
		storeGroup.GET("/products/:id", r.params.StorefrontHandler.GetProduct)
	}

	// Tracking QR is public so the link works from a shared tracking page.
	e.GET("/orders/:id/qr", r.params.CheckoutHandler.TrackingQR)

	// Shopper routes that require a verified identity token
	accountGroup := e.Group("/account")
	accountGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		accountGroup.GET("/me", r.params.AccountHandler.Me)
		accountGroup.PUT("/me", r.params.AccountHandler.UpdateProfile)
		accountGroup.GET("/orders", r.params.CheckoutHandler.ListMyOrders)
	}

	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		checkoutGroup.GET("/cart", r.params.CheckoutHandler.GetCart)
		checkoutGroup.POST("/quote", r.params.CheckoutHandler.Quote)
		checkoutGroup.POST("/orders", r.params.CheckoutHandler.PlaceOrder)
	}

	// Admin routes: authenticated, then the role is re-checked against the
	// backend on every request.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireAdmin)
	{
		adminGroup.GET("/dashboard", r.params.DashboardHandler.Snapshot)
		adminGroup.POST("/dashboard/refresh", r.params.DashboardHandler.Refresh)
		adminGroup.GET("/deliveries/pending", r.params.DashboardHandler.PendingDeliveries)
		adminGroup.GET("/deliveries/:status", r.params.DashboardHandler.OrdersByDeliveryStatus)
		adminGroup.POST("/orders/:id/delivery", r.params.DashboardHandler.ApplyDeliveryAction)
		adminGroup.DELETE("/orders/:id", r.params.DashboardHandler.DeleteOrder)

		adminGroup.POST("/products", r.params.AdminCatalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.params.AdminCatalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.params.AdminCatalogHandler.DeleteProduct)
		adminGroup.POST("/categories", r.params.AdminCatalogHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", r.params.AdminCatalogHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.params.AdminCatalogHandler.DeleteCategory)

		adminGroup.PUT("/users/:email", r.params.AdminUserHandler.UpdateUser)
		adminGroup.DELETE("/users/:email", r.params.AdminUserHandler.DeleteUser)

		adminGroup.POST("/uploads", r.params.UploadHandler.UploadImage)
		adminGroup.GET("/reports/:type", r.params.ReportHandler.DownloadReport)
		adminGroup.POST("/reports/:type/email", r.params.ReportHandler.EmailReport)
	}
}
