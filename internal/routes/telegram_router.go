package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	telegramcontroller "crm-system/internal/controllers/telegram"
	"crm-system/internal/repositories"
	"crm-system/internal/services"
	"crm-system/pkg/config"
	"crm-system/pkg/telegram"
)

func runTelegramRouter(
	api *echo.Group,
	recordService services.RecordServiceInterface,
	sessionStore repositories.CacheRepositoryInterface,
	tgService telegram.ServiceInterface,
	logger *zap.Logger,
	cfg *config.Config,
) {
	controller := telegramcontroller.NewTelegramController(
		recordService, tgService, sessionStore, cfg.Telegram.SessionTTL, logger)

	api.POST("/telegram/webhook", controller.HandleTelegramWebhook)
}
