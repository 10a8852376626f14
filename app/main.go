// Файл: main.go

package main

import (
	"context"
	"net/http"

	"crm-system/internal/repositories"
	"crm-system/internal/routes"
	"crm-system/migrations"
	"crm-system/pkg/config"
	"crm-system/pkg/database/postgresql"
	apperrors "crm-system/pkg/errors"
	applogger "crm-system/pkg/logger"
	"crm-system/pkg/telegram"
	"crm-system/pkg/utils"
	"crm-system/pkg/validation"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORS())

	e.Validator = validation.New()

	if err := migrations.Up(cfg.Postgres.DSN); err != nil {
		logger.Fatal("Ошибка применения миграций", zap.Error(err))
	}

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	// Сессии диалога по умолчанию живут в памяти процесса: прерванный
	// диалог после рестарта теряется. Redis включается конфигом, когда
	// нужна живучесть сессий.
	var sessionStore repositories.CacheRepositoryInterface
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		sessionStore = repositories.NewRedisCacheRepository(redisClient)
	} else {
		sessionStore = repositories.NewMemoryCacheRepository()
	}

	routes.InitRouter(e, dbConn, sessionStore, logger, cfg)

	if cfg.Telegram.BotToken != "" && cfg.Telegram.WebhookURL != "" {
		tgService := telegram.NewService(cfg.Telegram.BotToken)
		if err := tgService.SetWebhook(context.Background(), cfg.Telegram.WebhookURL+"/api/telegram/webhook"); err != nil {
			logger.Error("Не удалось зарегистрировать вебхук Telegram", zap.Error(err))
		} else {
			logger.Info("Вебхук Telegram зарегистрирован", zap.String("url", cfg.Telegram.WebhookURL))
		}
	}

	logger.Info("🚀 Сервер запущен на :" + cfg.Server.Port)
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
