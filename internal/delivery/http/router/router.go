// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"phonestore/internal/delivery/http/middleware"
	"phonestore/internal/delivery/http/router/handler"
	"phonestore/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	AdminOrderHandler   *handler.AdminOrderHandler
	ProfileHandler      *handler.ProfileHandler
	NotificationHandler *handler.NotificationHandler
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

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.Refresh)
	}

	// Public storefront routes
	e.GET("/brands", r.params.CatalogHandler.ListBrands)
	e.GET("/brands/:id", r.params.CatalogHandler.GetBrand)
	e.GET("/phones", r.params.CatalogHandler.ListPhones)
	e.GET("/phones/:id", r.params.CatalogHandler.GetPhone)
	e.GET("/search", r.params.CatalogHandler.SearchPhones)

	// Routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.params.ProfileHandler.GetProfile)
		userGroup.PUT("/profile", r.params.ProfileHandler.UpdateProfile)

		userGroup.GET("/cart", r.params.CartHandler.GetCart)
		userGroup.POST("/cart/items", r.params.CartHandler.AddItem)
		userGroup.PUT("/cart/items/:id", r.params.CartHandler.UpdateItem)
		userGroup.DELETE("/cart/items/:id", r.params.CartHandler.RemoveItem)
		userGroup.DELETE("/cart", r.params.CartHandler.ClearCart)

		userGroup.POST("/checkout", r.params.OrderHandler.Checkout)
		userGroup.GET("/orders", r.params.OrderHandler.ListOrders)
		userGroup.GET("/orders/:id", r.params.OrderHandler.GetOrder)

		userGroup.GET("/notifications", r.params.NotificationHandler.ListNotifications)
		userGroup.PUT("/notifications/:id/read", r.params.NotificationHandler.MarkRead)
	}

	// Staff routes that require authentication and the staff role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleStaff))
	{
		adminGroup.POST("/brands", r.params.CatalogHandler.CreateBrand)
		adminGroup.PUT("/brands/:id", r.params.CatalogHandler.UpdateBrand)
		adminGroup.DELETE("/brands/:id", r.params.CatalogHandler.DeleteBrand)
		adminGroup.POST("/phones", r.params.CatalogHandler.CreatePhone)
		adminGroup.PUT("/phones/:id", r.params.CatalogHandler.UpdatePhone)
		adminGroup.DELETE("/phones/:id", r.params.CatalogHandler.DeletePhone)

		adminGroup.GET("/orders", r.params.AdminOrderHandler.ListOrders)
		adminGroup.GET("/orders/:id", r.params.AdminOrderHandler.GetOrder)
		adminGroup.PUT("/orders/:id/status", r.params.AdminOrderHandler.UpdateStatus)
	}
}
