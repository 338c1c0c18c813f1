package routes

import (
	"github.com/gin-gonic/gin"

	"deskd/internal/interfaces/http/handlers"
	"deskd/internal/interfaces/http/middleware"
	"deskd/internal/shared/authorization"
)

type TeamRouteConfig struct {
	TeamHandler    *handlers.TeamHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTeamRoutes(engine *gin.Engine, config *TeamRouteConfig) {
	teams := engine.Group("/teams")
	teams.Use(config.AuthMiddleware.RequireAuth())
	{
		teams.GET("", authorization.RequireStaff(), config.TeamHandler.ListTeams)
		teams.GET("/:id", authorization.RequireStaff(), config.TeamHandler.GetTeam)

		teams.POST("", authorization.RequireAdmin(), config.TeamHandler.CreateTeam)
		teams.PUT("/:id", authorization.RequireAdmin(), config.TeamHandler.UpdateTeam)
		teams.DELETE("/:id", authorization.RequireAdmin(), config.TeamHandler.DeleteTeam)
		teams.POST("/:id/members", authorization.RequireAdmin(), config.TeamHandler.AddMember)
		teams.DELETE("/:id/members/:userId", authorization.RequireAdmin(), config.TeamHandler.RemoveMember)
	}
}
