// Package router contains routing setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler  *handler.HealthHandler
	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	ImageHandler   *handler.ImageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler  *handler.HealthHandler
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	imageHandler   *handler.ImageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:  params.HealthHandler,
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		imageHandler:   params.ImageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/healthz", r.healthHandler.Check)

	v1 := e.Group("/v1")

	// Public account routes
	v1.POST("/user", r.userHandler.Register)
	v1.GET("/user/verify", r.userHandler.VerifyEmail)
	v1.POST("/user/login", r.userHandler.Login)
	v1.POST("/user/refresh", r.userHandler.RefreshToken)
	v1.POST("/user/logout", r.userHandler.Logout)

	// Account routes that require authentication
	userGroup := v1.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/self", r.userHandler.GetSelf)
		userGroup.PUT("/self", r.userHandler.UpdateSelf)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PUT("/:id", r.userHandler.UpdateUser)
	}

	// Product routes, all owner-gated behind authentication
	productGroup := v1.Group("/product")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.POST("", r.productHandler.Create)
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.PUT("/:id", r.productHandler.Replace)
		productGroup.PATCH("/:id", r.productHandler.Patch)
		productGroup.DELETE("/:id", r.productHandler.Delete)

		productGroup.POST("/:id/image", r.imageHandler.Upload)
		productGroup.GET("/:id/image", r.imageHandler.List)
		productGroup.GET("/:id/image/:imageId", r.imageHandler.Get)
		productGroup.DELETE("/:id/image/:imageId", r.imageHandler.Delete)
	}
}
