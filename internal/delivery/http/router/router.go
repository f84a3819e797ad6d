// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	AuthHandler       *handler.AuthHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	authHandler       *handler.AuthHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		authHandler:       params.AuthHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes, all anonymous
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/search", r.catalogHandler.SearchProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)
	e.GET("/categories", r.catalogHandler.ListCategories)
	e.GET("/categories/:category/products", r.catalogHandler.ListProductsByCategory)

	// Cart routes; browsing the basket is anonymous, checkout needs a session
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.SetQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.POST("/checkout", r.cartHandler.Checkout, r.sessionMiddleware.RequireSession)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.POST("/verify", r.authHandler.Verify, r.sessionMiddleware.RequireSession)
	}
}
