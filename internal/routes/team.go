package routes

import (
	"maintenance-system/internal/controllers"
	"maintenance-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runTeamRouter(secureGroup *echo.Group, teamService services.TeamServiceInterface, logger *zap.Logger) {
	teamCtrl := controllers.NewTeamController(teamService, logger)

	teamGroup := secureGroup.Group("/teams")
	{
		teamGroup.GET("", teamCtrl.GetTeams)
		teamGroup.GET("/:id", teamCtrl.FindTeam)
		teamGroup.POST("", teamCtrl.CreateTeam)
	}
}
