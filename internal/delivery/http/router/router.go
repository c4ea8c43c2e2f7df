// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"localia/internal/delivery/http/middleware"
	"localia/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	BusinessHandler *handler.BusinessHandler
	RegionHandler   *handler.RegionHandler
	CatalogHandler  *handler.CatalogHandler
	ClientHandler   *handler.ClientHandler
	CourierHandler  *handler.CourierHandler
	APIKeyHandler   *handler.APIKeyHandler

	AuthMiddleware   *middleware.AuthMiddleware
	APIKeyMiddleware *middleware.APIKeyMiddleware
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
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account and session endpoints. All public: the flows that need a
	// token carry it to Supabase, which does the verification.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", p.AuthHandler.SignUp)
		authGroup.POST("/signin", p.AuthHandler.SignIn)
		authGroup.POST("/refresh", p.AuthHandler.Refresh)
		authGroup.POST("/password/reset", p.AuthHandler.RequestPasswordReset)
		authGroup.POST("/password/update", p.AuthHandler.UpdatePassword)
		authGroup.POST("/signout", p.AuthHandler.SignOut)
		authGroup.GET("/me", p.AuthHandler.Me)
	}

	// Public region endpoints used by the merchant app before sign-in.
	e.GET("/businesses/active-region", p.BusinessHandler.ActiveRegion)
	e.GET("/businesses/validate-location", p.BusinessHandler.ValidateLocation)

	// Business routes that require authentication
	businessGroup := e.Group("/businesses")
	businessGroup.Use(p.AuthMiddleware.Authenticate)
	{
		businessGroup.GET("", p.BusinessHandler.List)
		businessGroup.GET("/statistics", p.BusinessHandler.Statistics)
		businessGroup.GET("/my-business", p.BusinessHandler.MyBusiness)
		businessGroup.GET("/:id", p.BusinessHandler.Get)
		businessGroup.POST("", p.BusinessHandler.Create)
		businessGroup.PATCH("/:id/status", p.BusinessHandler.UpdateStatus)
	}

	regionGroup := e.Group("/service-regions")
	regionGroup.Use(p.AuthMiddleware.Authenticate)
	{
		regionGroup.GET("", p.RegionHandler.List)
		regionGroup.GET("/statistics", p.RegionHandler.Statistics)
		regionGroup.GET("/:id", p.RegionHandler.Get)
	}

	productGroup := e.Group("/products")
	productGroup.Use(p.AuthMiddleware.Authenticate)
	{
		productGroup.GET("", p.CatalogHandler.ListProducts)
		productGroup.GET("/:id", p.CatalogHandler.GetProduct)
		productGroup.POST("", p.CatalogHandler.CreateProduct)
		productGroup.PATCH("/:id", p.CatalogHandler.UpdateProduct)
		productGroup.DELETE("/:id", p.CatalogHandler.DeleteProduct)
	}

	categoryGroup := e.Group("/categories")
	categoryGroup.Use(p.AuthMiddleware.Authenticate)
	{
		categoryGroup.GET("", p.CatalogHandler.ListCategories)
		categoryGroup.GET("/:id", p.CatalogHandler.GetCategory)
		categoryGroup.POST("", p.CatalogHandler.CreateCategory)
		categoryGroup.PATCH("/:id", p.CatalogHandler.UpdateCategory)
		categoryGroup.DELETE("/:id", p.CatalogHandler.DeleteCategory)
	}

	clientGroup := e.Group("/clients")
	clientGroup.Use(p.AuthMiddleware.Authenticate)
	{
		clientGroup.GET("", p.ClientHandler.List)
		clientGroup.GET("/:id", p.ClientHandler.Get)
	}

	courierGroup := e.Group("/couriers")
	courierGroup.Use(p.AuthMiddleware.Authenticate)
	{
		courierGroup.GET("", p.CourierHandler.List)
		courierGroup.GET("/:id", p.CourierHandler.Get)
		courierGroup.PATCH("/:id/status", p.CourierHandler.UpdateStatus)
	}

	// Machine-to-machine key management, guarded by an existing API key.
	apiKeyGroup := e.Group("/api-keys")
	apiKeyGroup.Use(p.APIKeyMiddleware.Validate)
	{
		apiKeyGroup.POST("/applications", p.APIKeyHandler.CreateApplication)
		apiKeyGroup.GET("/applications/:id/keys", p.APIKeyHandler.ListKeys)
		apiKeyGroup.POST("", p.APIKeyHandler.CreateKey)
		apiKeyGroup.DELETE("/:id", p.APIKeyHandler.RevokeKey)
	}
}
