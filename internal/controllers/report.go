package controllers

import (
	"fmt"
	"net/http"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/types"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportController struct {
	maintenanceService services.MaintenanceServiceInterface
	logger             *zap.Logger
}

func NewReportController(maintenanceService services.MaintenanceServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{maintenanceService: maintenanceService, logger: logger}
}

// GetReport выгружает список заявок; ?format=xlsx отдаёт файл Excel,
// любой другой формат - обычный JSON-ответ.
func (c *ReportController) GetReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	data, err := c.maintenanceService.GetRequests(reqCtx, types.Filter{})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if ctx.QueryParam("format") == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}
	return utils.SuccessResponse(ctx, data, "Отчёт успешно сформирован", http.StatusOK)
}

var reportHeaders = []string{
	"ID", "Тема", "Вид обслуживания", "Статус", "Объект", "Категория",
	"Команда", "Исполнитель", "Автор", "Запланировано", "Длительность (часы)", "Создана",
}

func requestToRow(item dto.MaintenanceRequestDTO) []interface{} {
	target := item.EquipmentName.String
	if target == "" {
		target = item.WorkCenterName.String
	}

	var duration string
	if item.DurationHours.Valid {
		duration = fmt.Sprintf("%.2f", item.DurationHours.Float64)
	}

	return []interface{}{
		item.ID, item.Subject, item.Type, item.Status, target, item.Category.String,
		item.TeamName.String, item.AssignedToName.String, item.CreatedByName.String,
		item.ScheduledDate.String, duration, item.CreatedAt,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []dto.MaintenanceRequestDTO) error {
	f := excelize.NewFile()
	sheet := "Заявки на обслуживание"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "L1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := requestToRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "E", 20)
	f.SetColWidth(sheet, "G", "I", 25)
	f.SetColWidth(sheet, "J", "L", 20)

	fileName := fmt.Sprintf("maintenance_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
