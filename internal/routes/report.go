package routes

import (
	"maintenance-system/internal/controllers"
	"maintenance-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runReportRouter(secureGroup *echo.Group, maintenanceService services.MaintenanceServiceInterface, logger *zap.Logger) {
	reportCtrl := controllers.NewReportController(maintenanceService, logger)

	secureGroup.GET("/reports", reportCtrl.GetReport)
}
