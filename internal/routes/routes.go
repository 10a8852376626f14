package routes

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"crm-system/internal/controllers"
	"crm-system/internal/repositories"
	"crm-system/internal/services"
	"crm-system/pkg/config"
	"crm-system/pkg/telegram"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	sessionStore repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg *config.Config,
) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")

	// --- 1. РЕПОЗИТОРИИ ---
	recordRepo := repositories.NewRecordRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn)

	// --- 2. СЕРВИСЫ ---
	recordService := services.NewRecordService(recordRepo, logger)
	reportService := services.NewReportService(reportRepo, logger)

	// --- 3. КОНТРОЛЛЕРЫ ---
	recordController := controllers.NewRecordController(recordService, logger)
	reportController := controllers.NewReportController(reportService, logger)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- 4. РОУТЕРЫ ---
	runReportRouter(api, reportController)
	runTelegramRouter(api, recordService, sessionStore, telegram.NewService(cfg.Telegram.BotToken), logger, cfg)
	runRecordRouter(api, recordController)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
