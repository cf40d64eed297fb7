// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beanwatch/internal/delivery/http/middleware"
	"beanwatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	StockHandler   *handler.StockHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	stockHandler   *handler.StockHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		stockHandler:   params.StockHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public auth routes
	api.POST("/register", r.authHandler.Register)
	api.POST("/login", r.authHandler.Login)

	// Everything below requires a valid, unrevoked bearer token
	authed := api.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.POST("/logout", r.authHandler.Logout)

		// Stock-condition routes; per-record visibility is decided by the
		// access policy, not the router
		stocksGroup := authed.Group("/stocks")
		{
			stocksGroup.GET("", r.stockHandler.List)
			stocksGroup.POST("", r.stockHandler.Create)
			stocksGroup.GET("/:id", r.stockHandler.Get)
			stocksGroup.PUT("/:id", r.stockHandler.Update)
			stocksGroup.DELETE("/:id", r.stockHandler.Delete)
		}

		// Admin-only routes; the role gate gives bulk operations their
		// explicit 403
		adminOnly := authed.Group("")
		adminOnly.Use(r.authMiddleware.RequireAdmin)
		{
			adminOnly.GET("/stock-conditions/all", r.stockHandler.ListAll)
			adminOnly.GET("/admin/users", r.adminHandler.ListUsers)
			adminOnly.POST("/admin/create-farmer", r.adminHandler.CreateFarmer)
			adminOnly.POST("/users", r.adminHandler.CreateUser)
			adminOnly.GET("/roles", r.adminHandler.ListRoles)
		}
	}
}
