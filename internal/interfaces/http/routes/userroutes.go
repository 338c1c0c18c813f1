package routes

import (
	"github.com/gin-gonic/gin"

	"deskd/internal/interfaces/http/handlers"
	"deskd/internal/interfaces/http/middleware"
	"deskd/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/agents", authorization.RequireStaff(), config.UserHandler.ListAgents)
		users.GET("/:id", authorization.RequireStaff(), config.UserHandler.GetUser)
		users.PUT("/:id/skills", authorization.RequireAdmin(), config.UserHandler.UpdateSkills)
	}
}
