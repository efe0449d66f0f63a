package routes

import (
	"maintenance-system/internal/controllers"
	"maintenance-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runEquipmentRouter(secureGroup *echo.Group, equipmentService services.EquipmentServiceInterface, logger *zap.Logger) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)

	equipmentGroup := secureGroup.Group("/equipment")
	{
		equipmentGroup.GET("", equipmentCtrl.GetEquipments)
		equipmentGroup.GET("/:id", equipmentCtrl.FindEquipment)
		equipmentGroup.POST("", equipmentCtrl.CreateEquipment)
	}
}
