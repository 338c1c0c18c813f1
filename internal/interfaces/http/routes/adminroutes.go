package routes

import (
	"github.com/gin-gonic/gin"

	"deskd/internal/interfaces/http/handlers"
	"deskd/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	StatsHandler   *handlers.StatsHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permission     *middleware.PermissionMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	stats := engine.Group("/stats")
	stats.Use(config.AuthMiddleware.RequireAuth())
	{
		stats.GET("/tickets",
			config.Permission.RequirePermission("stats", "read"),
			config.StatsHandler.GetTicketStats)
	}
}
