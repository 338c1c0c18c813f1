package routes

import (
	"github.com/gin-gonic/gin"

	"deskd/internal/interfaces/http/handlers"
	"deskd/internal/interfaces/http/middleware"
	"deskd/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	RoutingHandler *handlers.RoutingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Action endpoints before the generic parameterized routes.
		tickets.POST("/:id/assign",
			authorization.RequireStaff(),
			config.TicketHandler.AssignTicket)
		tickets.POST("/:id/auto-assign",
			authorization.RequireStaff(),
			config.RoutingHandler.AutoAssign)
		tickets.PATCH("/:id/status",
			config.TicketHandler.ChangeStatus)
		tickets.PATCH("/:id/priority",
			authorization.RequireStaff(),
			config.TicketHandler.ChangePriority)
		tickets.POST("/:id/comments",
			config.TicketHandler.AddComment)
		tickets.GET("/:id/comments",
			config.TicketHandler.ListComments)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			authorization.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}
}
