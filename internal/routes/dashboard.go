package routes

import (
	"maintenance-system/internal/controllers"
	"maintenance-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runDashboardRouter(secureGroup *echo.Group, dashboardService services.DashboardServiceInterface, logger *zap.Logger) {
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	dashboardGroup := secureGroup.Group("/dashboard")
	{
		dashboardGroup.GET("/stats", dashboardCtrl.GetStats)
		dashboardGroup.GET("/search", dashboardCtrl.SearchRequests)
	}
}
