package controllers

import (
	"net/http"
	"strconv"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MaintenanceController struct {
	maintenanceService services.MaintenanceServiceInterface
	calendarService    services.CalendarServiceInterface
	logger             *zap.Logger
}

func NewMaintenanceController(
	maintenanceService services.MaintenanceServiceInterface,
	calendarService services.CalendarServiceInterface,
	logger *zap.Logger,
) *MaintenanceController {
	return &MaintenanceController{
		maintenanceService: maintenanceService,
		calendarService:    calendarService,
		logger:             logger,
	}
}

func (c *MaintenanceController) GetRequests(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter := types.Filter{}
	if raw := ctx.QueryParam("equipment_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusBadRequest, "Неверный equipment_id", err, nil), c.logger)
		}
		filter.EquipmentID = &id
	}
	if raw := ctx.QueryParam("work_center_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusBadRequest, "Неверный work_center_id", err, nil), c.logger)
		}
		filter.WorkCenterID = &id
	}

	res, err := c.maintenanceService.GetRequests(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Список заявок успешно получен", http.StatusOK)
}

func (c *MaintenanceController) GetCalendar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.calendarService.GetEvents(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "События календаря успешно получены", http.StatusOK)
}

func (c *MaintenanceController) GetCalendarWeek(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	reference, err := c.parseReferenceDate(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.calendarService.GetWeek(reqCtx, reference)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Неделя календаря успешно получена", http.StatusOK)
}

func (c *MaintenanceController) GetCalendarMonth(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	reference, err := c.parseReferenceDate(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.calendarService.GetMonth(reqCtx, reference)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Месяц календаря успешно получен", http.StatusOK)
}

// parseReferenceDate читает опорную дату из ?date=YYYY-MM-DD; без
// параметра берётся сегодняшний день.
func (c *MaintenanceController) parseReferenceDate(ctx echo.Context) (time.Time, error) {
	raw := ctx.QueryParam("date")
	if raw == "" {
		return time.Now(), nil
	}
	reference, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат даты, ожидается YYYY-MM-DD", err, nil)
	}
	return reference, nil
}

func (c *MaintenanceController) FindRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный ID", err, nil), c.logger)
	}

	res, err := c.maintenanceService.FindRequest(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Заявка успешно найдена", http.StatusOK)
}

func (c *MaintenanceController) CreateRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateMaintenanceRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.maintenanceService.CreateRequest(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Заявка успешно создана", http.StatusCreated)
}

func (c *MaintenanceController) AssignRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный ID", err, nil), c.logger)
	}

	var payload dto.AssignMaintenanceRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.maintenanceService.AssignRequest(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Исполнитель успешно назначен", http.StatusOK)
}

func (c *MaintenanceController) UpdateStatus(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный ID", err, nil), c.logger)
	}

	var payload dto.UpdateMaintenanceStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.maintenanceService.UpdateStatus(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Статус заявки успешно изменён", http.StatusOK)
}
