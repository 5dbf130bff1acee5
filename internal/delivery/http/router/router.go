// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"directorio/internal/delivery/http/middleware"
	"directorio/internal/delivery/http/router/handler"
	"directorio/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	AuthHandler     *handler.AuthHandler
	FavoriteHandler *handler.FavoriteHandler
	EnquiryHandler  *handler.EnquiryHandler
	NewsHandler     *handler.NewsHandler
	AdminHandler    *handler.AdminHandler
	DraftHandler    *handler.DraftHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	authHandler     *handler.AuthHandler
	favoriteHandler *handler.FavoriteHandler
	enquiryHandler  *handler.EnquiryHandler
	newsHandler     *handler.NewsHandler
	adminHandler    *handler.AdminHandler
	draftHandler    *handler.DraftHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		authHandler:     params.AuthHandler,
		favoriteHandler: params.FavoriteHandler,
		enquiryHandler:  params.EnquiryHandler,
		newsHandler:     params.NewsHandler,
		adminHandler:    params.AdminHandler,
		draftHandler:    params.DraftHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public catalog routes
	{
		api.GET("/residences", r.catalogHandler.ListResidences)
		api.GET("/residences/:id", r.catalogHandler.GetResidence)
		api.GET("/residences/:id/qr", r.catalogHandler.ResidenceQR)
		api.GET("/residences/nearby", r.catalogHandler.Nearby)
		api.POST("/residences/compare", r.catalogHandler.Compare)
		api.GET("/provinces", r.catalogHandler.ListProvinces)
		api.GET("/cities", r.catalogHandler.ListCities)

		api.GET("/news", r.newsHandler.ListPublished)
		api.GET("/news/:id", r.newsHandler.GetPublished)

		api.POST("/enquiries", r.enquiryHandler.Submit)
	}

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// User routes that require authentication
	userGroup := api.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("/favorites", r.favoriteHandler.ListFavorites)
		userGroup.GET("/favorites/:id", r.favoriteHandler.IsFavorite)
		userGroup.POST("/favorites/:id/toggle", r.favoriteHandler.Toggle)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/residences", r.adminHandler.ListResidences)
		adminGroup.POST("/residences", r.adminHandler.CreateResidence)
		adminGroup.GET("/residences/:id", r.adminHandler.GetResidence)
		adminGroup.DELETE("/residences/:id", r.adminHandler.DeleteResidence)

		adminGroup.POST("/residences/:id/draft", r.draftHandler.Open)
		adminGroup.GET("/residences/:id/draft", r.draftHandler.Status)
		adminGroup.PUT("/residences/:id/draft", r.draftHandler.Update)
		adminGroup.POST("/residences/:id/draft/lists/:field", r.draftHandler.EditList)
		adminGroup.PUT("/residences/:id/draft/contacts/:field", r.draftHandler.SetSideChannel)
		adminGroup.PUT("/residences/:id/draft/autosave", r.draftHandler.SetAutosave)
		adminGroup.POST("/residences/:id/draft/save", r.draftHandler.Save)
		adminGroup.DELETE("/residences/:id/draft", r.draftHandler.Close)

		adminGroup.POST("/media", r.adminHandler.UploadMedia)
		adminGroup.GET("/enquiries", r.adminHandler.ListEnquiries)

		adminGroup.GET("/news", r.newsHandler.ListAll)
		adminGroup.POST("/news", r.newsHandler.Create)
		adminGroup.PUT("/news/:id", r.newsHandler.Update)
		adminGroup.DELETE("/news/:id", r.newsHandler.Delete)
	}
}
