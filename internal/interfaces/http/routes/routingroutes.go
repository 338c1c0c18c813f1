package routes

import (
	"github.com/gin-gonic/gin"

	"deskd/internal/interfaces/http/handlers"
	"deskd/internal/interfaces/http/middleware"
)

type RoutingRouteConfig struct {
	RoutingHandler *handlers.RoutingHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permission     *middleware.PermissionMiddleware
}

func SetupRoutingRoutes(engine *gin.Engine, config *RoutingRouteConfig) {
	routing := engine.Group("/routing")
	routing.Use(config.AuthMiddleware.RequireAuth())
	{
		rules := routing.Group("/rules")
		{
			rules.POST("",
				config.Permission.RequirePermission("routing_rule", "create"),
				config.RoutingHandler.CreateRule)
			rules.GET("",
				config.Permission.RequirePermission("routing_rule", "read"),
				config.RoutingHandler.ListRules)
			rules.POST("/preview",
				config.Permission.RequirePermission("routing_rule", "read"),
				config.RoutingHandler.PreviewMatch)
			rules.GET("/:id",
				config.Permission.RequirePermission("routing_rule", "read"),
				config.RoutingHandler.GetRule)
			rules.PUT("/:id",
				config.Permission.RequirePermission("routing_rule", "update"),
				config.RoutingHandler.UpdateRule)
			rules.DELETE("/:id",
				config.Permission.RequirePermission("routing_rule", "delete"),
				config.RoutingHandler.DeleteRule)
		}

		agents := routing.Group("/agents")
		agents.Use(config.Permission.RequirePermission("routing_rule", "read"))
		{
			agents.GET("", config.RoutingHandler.GetAvailableAgents)
			agents.GET("/best", config.RoutingHandler.FindBestAgent)
		}
	}
}
