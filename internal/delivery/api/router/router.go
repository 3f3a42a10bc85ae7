// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bakery/internal/delivery/api/middleware"
	"bakery/internal/delivery/api/router/handler"
	"bakery/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	OrderHandler          *handler.OrderHandler
	ProductHandler        *handler.ProductHandler
	PickupLocationHandler *handler.PickupLocationHandler
	UserHandler           *handler.UserHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler           *handler.AuthHandler
	orderHandler          *handler.OrderHandler
	productHandler        *handler.ProductHandler
	pickupLocationHandler *handler.PickupLocationHandler
	userHandler           *handler.UserHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:           params.AuthHandler,
		orderHandler:          params.OrderHandler,
		productHandler:        params.ProductHandler,
		pickupLocationHandler: params.PickupLocationHandler,
		userHandler:           params.UserHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}

	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Every signed in role works with orders and the dashboard
	ordersGroup := e.Group("/orders", r.authMiddleware.Authenticate)
	{
		ordersGroup.GET("", r.orderHandler.Storefront)
		ordersGroup.GET("/search", r.orderHandler.Search)
		ordersGroup.GET("/upcoming", r.orderHandler.Upcoming)
		ordersGroup.GET("/new", r.orderHandler.New)
		ordersGroup.POST("", r.orderHandler.Create)
		ordersGroup.GET("/:id", r.orderHandler.Get)
		ordersGroup.PUT("/:id", r.orderHandler.Update)
		ordersGroup.DELETE("/:id", r.orderHandler.Delete)
		ordersGroup.POST("/:id/comments", r.orderHandler.AddComment)
		ordersGroup.PUT("/:id/state", r.orderHandler.ChangeState)
		ordersGroup.GET("/:id/qrcode", r.orderHandler.QRCode)
	}

	e.GET("/dashboard", r.orderHandler.Dashboard, r.authMiddleware.Authenticate)

	// Catalogue data is readable by everyone placing orders, writable by admins
	productsGroup := e.Group("/products", r.authMiddleware.Authenticate)
	{
		productsGroup.GET("", r.productHandler.List)
		productsGroup.GET("/:id", r.productHandler.Get)
		productsGroup.POST("", r.productHandler.Create, adminOnly)
		productsGroup.PUT("/:id", r.productHandler.Update, adminOnly)
		productsGroup.DELETE("/:id", r.productHandler.Delete, adminOnly)
	}

	locationsGroup := e.Group("/pickup-locations", r.authMiddleware.Authenticate)
	{
		locationsGroup.GET("", r.pickupLocationHandler.List)
		locationsGroup.GET("/default", r.pickupLocationHandler.Default)
		locationsGroup.GET("/:id", r.pickupLocationHandler.Get)
		locationsGroup.POST("", r.pickupLocationHandler.Create, adminOnly)
		locationsGroup.PUT("/:id", r.pickupLocationHandler.Update, adminOnly)
		locationsGroup.DELETE("/:id", r.pickupLocationHandler.Delete, adminOnly)
	}

	usersGroup := e.Group("/users", r.authMiddleware.Authenticate, adminOnly)
	{
		usersGroup.GET("", r.userHandler.List)
		usersGroup.GET("/:id", r.userHandler.Get)
		usersGroup.POST("", r.userHandler.Create)
		usersGroup.PUT("/:id", r.userHandler.Update)
		usersGroup.DELETE("/:id", r.userHandler.Delete)
	}
}
