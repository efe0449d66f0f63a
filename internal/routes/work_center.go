package routes

import (
	"maintenance-system/internal/controllers"
	"maintenance-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runWorkCenterRouter(secureGroup *echo.Group, workCenterService services.WorkCenterServiceInterface, logger *zap.Logger) {
	workCenterCtrl := controllers.NewWorkCenterController(workCenterService, logger)

	workCenterGroup := secureGroup.Group("/work-centers")
	{
		workCenterGroup.GET("", workCenterCtrl.GetWorkCenters)
		workCenterGroup.GET("/:id", workCenterCtrl.FindWorkCenter)
		workCenterGroup.POST("", workCenterCtrl.CreateWorkCenter)
		workCenterGroup.GET("/:id/alternatives", workCenterCtrl.GetAlternatives)
		workCenterGroup.POST("/:id/alternatives", workCenterCtrl.AddAlternative)
	}
}
