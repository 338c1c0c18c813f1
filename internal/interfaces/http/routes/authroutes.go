package routes

import (
	"github.com/gin-gonic/gin"

	"deskd/internal/interfaces/http/handlers"
	"deskd/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		// OptionalAuth lets an authenticated admin create staff accounts
		// through the same endpoint.
		register := []gin.HandlerFunc{config.AuthMiddleware.OptionalAuth()}
		login := []gin.HandlerFunc{config.AuthHandler.Login}
		refresh := []gin.HandlerFunc{config.AuthHandler.Refresh}
		if config.RateLimit != nil {
			register = append([]gin.HandlerFunc{config.RateLimit.Limit()}, register...)
			login = append([]gin.HandlerFunc{config.RateLimit.Limit()}, login...)
			refresh = append([]gin.HandlerFunc{config.RateLimit.Limit()}, refresh...)
		}

		auth.POST("/register", append(register, config.AuthHandler.Register)...)
		auth.POST("/login", login...)
		auth.POST("/refresh", refresh...)
		auth.POST("/logout", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Logout)
		auth.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Me)
	}
}
