package controllers

import (
	"net/http"

	"maintenance-system/internal/services"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) GetStats(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.dashboardService.GetStats(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Сводка успешно получена", http.StatusOK)
}

func (c *DashboardController) SearchRequests(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.dashboardService.SearchRequests(reqCtx, ctx.QueryParam("search"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Результаты поиска успешно получены", http.StatusOK)
}
