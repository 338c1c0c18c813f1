package routes

import (
	"github.com/gin-gonic/gin"

	"deskd/internal/interfaces/http/handlers"
	"deskd/internal/interfaces/http/middleware"
	"deskd/internal/shared/authorization"
)

type CustomFieldRouteConfig struct {
	CustomFieldHandler *handlers.CustomFieldHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

func SetupCustomFieldRoutes(engine *gin.Engine, config *CustomFieldRouteConfig) {
	fields := engine.Group("/custom-fields")
	fields.Use(config.AuthMiddleware.RequireAuth())
	{
		// Definitions are readable by any authenticated user so clients can
		// render ticket forms.
		fields.GET("", config.CustomFieldHandler.List)
		fields.GET("/:id", config.CustomFieldHandler.Get)

		fields.POST("", authorization.RequireAdmin(), config.CustomFieldHandler.Create)
		fields.PUT("/:id", authorization.RequireAdmin(), config.CustomFieldHandler.Update)
		fields.DELETE("/:id", authorization.RequireAdmin(), config.CustomFieldHandler.Delete)
	}
}
