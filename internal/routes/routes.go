package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/repositories"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/middleware"
	"maintenance-system/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// --- РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	teamRepo := repositories.NewTeamRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	workCenterRepo := repositories.NewWorkCenterRepository(dbConn)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn, logger)

	// --- СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, cfg.Auth, logger)
	teamService := services.NewTeamService(teamRepo, cacheRepo, cfg.Cache.PicklistTTL, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, teamRepo, workCenterRepo, logger)
	workCenterService := services.NewWorkCenterService(workCenterRepo, logger)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, equipmentRepo, workCenterRepo, userRepo, logger)
	calendarService := services.NewCalendarService(maintenanceRepo, logger)
	dashboardService := services.NewDashboardService(maintenanceRepo, logger)

	// --- РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authService, logger)
	runMaintenanceRouter(secureGroup, maintenanceService, calendarService, logger)
	runEquipmentRouter(secureGroup, equipmentService, logger)
	runWorkCenterRouter(secureGroup, workCenterService, logger)
	runTeamRouter(secureGroup, teamService, logger)
	runDashboardRouter(secureGroup, dashboardService, logger)
	runReportRouter(secureGroup, maintenanceService, logger)

	logger.Info("InitRouter: создание маршрутов завершено")
}
