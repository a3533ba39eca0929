// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookmarks/internal/delivery/http/middleware"
	"bookmarks/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	BookmarkHandler *handler.BookmarkHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	bookmarkHandler *handler.BookmarkHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		bookmarkHandler: params.BookmarkHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Live)
	e.GET("/health/ready", r.healthHandler.Ready)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/signin", r.authHandler.Signin)
	}

	// Everything below requires a bearer token.
	usersGroup := e.Group("/users", r.authMiddleware.Authenticate)
	{
		usersGroup.GET("/me", r.userHandler.GetMe)
		usersGroup.PATCH("", r.userHandler.Update)
	}

	bookmarksGroup := e.Group("/bookmarks", r.authMiddleware.Authenticate)
	{
		bookmarksGroup.GET("", r.bookmarkHandler.List)
		bookmarksGroup.POST("", r.bookmarkHandler.Create)
		bookmarksGroup.GET("/:id", r.bookmarkHandler.Get)
		bookmarksGroup.PATCH("/:id", r.bookmarkHandler.Update)
		bookmarksGroup.DELETE("/:id", r.bookmarkHandler.Delete)
		bookmarksGroup.GET("/:id/qr", r.bookmarkHandler.QRCode)
	}
}
