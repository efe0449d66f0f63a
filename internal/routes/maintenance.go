package routes

import (
	"maintenance-system/internal/controllers"
	"maintenance-system/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runMaintenanceRouter(
	secureGroup *echo.Group,
	maintenanceService services.MaintenanceServiceInterface,
	calendarService services.CalendarServiceInterface,
	logger *zap.Logger,
) {
	maintenanceCtrl := controllers.NewMaintenanceController(maintenanceService, calendarService, logger)

	maintenanceGroup := secureGroup.Group("/maintenance")
	{
		maintenanceGroup.GET("", maintenanceCtrl.GetRequests)
		// Конкретные пути регистрируются раньше параметрического :id.
		maintenanceGroup.GET("/calendar", maintenanceCtrl.GetCalendar)
		maintenanceGroup.GET("/calendar/week", maintenanceCtrl.GetCalendarWeek)
		maintenanceGroup.GET("/calendar/month", maintenanceCtrl.GetCalendarMonth)
		maintenanceGroup.GET("/:id", maintenanceCtrl.FindRequest)
		maintenanceGroup.POST("", maintenanceCtrl.CreateRequest)
		maintenanceGroup.PATCH("/:id/assign", maintenanceCtrl.AssignRequest)
		maintenanceGroup.PATCH("/:id/status", maintenanceCtrl.UpdateStatus)
	}
}
