// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"seely/internal/delivery/api/middleware"
	"seely/internal/delivery/api/router/handler"
	"seely/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	FederationHandler *handler.FederationHandler
	UserHandler       *handler.UserHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	federationHandler *handler.FederationHandler
	userHandler       *handler.UserHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		federationHandler: params.FederationHandler,
		userHandler:       params.UserHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Local credential sessions
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/whoami", r.authHandler.Whoami, r.authMiddleware.OptionalAuthenticate)
	}

	// OpenID Connect login against the configured provider
	federatedGroup := e.Group("/federated")
	{
		federatedGroup.GET("/login", r.federationHandler.Login)
		federatedGroup.GET("/callback", r.federationHandler.Callback)
		federatedGroup.GET("/logout", r.federationHandler.Logout)
		federatedGroup.GET("/logout-success", r.federationHandler.LogoutSuccess)
	}

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("", r.userHandler.Register)
		usersGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
		usersGroup.GET("/:username", r.userHandler.GetByUsername,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin),
		)
	}
}
