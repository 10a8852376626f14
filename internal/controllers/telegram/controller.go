// internal/controllers/telegram/controller.go
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"crm-system/internal/dto"
	"crm-system/internal/repositories"
	"crm-system/internal/services"
	"crm-system/pkg/telegram"
)

const intakeStateKey = "intake_state:%d"

type TelegramUpdate struct {
	UpdateID int64            `json:"update_id"`
	Message  *TelegramMessage `json:"message"`
}

type TelegramMessage struct {
	MessageID int          `json:"message_id"`
	Date      int64        `json:"date"`
	Chat      TelegramChat `json:"chat"`
	Text      string       `json:"text"`
}

type TelegramChat struct {
	ID int64 `json:"id"`
}

// TelegramController — входная дверь бота: принимает вебхуки и ведёт
// линейный диалог регистрации клиента и заявки. Состояние сессии живёт
// в cacheRepo по chat id и истекает по TTL простоя.
type TelegramController struct {
	recordService services.RecordServiceInterface
	tgService     telegram.ServiceInterface
	cacheRepo     repositories.CacheRepositoryInterface
	sessionTTL    time.Duration
	logger        *zap.Logger
}

func NewTelegramController(
	recordService services.RecordServiceInterface,
	tgService telegram.ServiceInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *TelegramController {
	return &TelegramController{
		recordService: recordService,
		tgService:     tgService,
		cacheRepo:     cacheRepo,
		sessionTTL:    sessionTTL,
		logger:        logger,
	}
}

// HandleTelegramWebhook всегда отвечает 200: Telegram повторяет доставку
// при любом другом статусе. Сообщения одного чата обрабатываются
// синхронно, в порядке прихода.
func (c *TelegramController) HandleTelegramWebhook(ctx echo.Context) error {
	var update TelegramUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.NoContent(http.StatusOK)
	}

	if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
		return ctx.NoContent(http.StatusOK)
	}

	c.handleMessage(ctx.Request().Context(), update.Message.Chat.ID, strings.TrimSpace(update.Message.Text))
	return ctx.NoContent(http.StatusOK)
}

func (c *TelegramController) getState(ctx context.Context, chatID int64) (*dto.IntakeState, error) {
	stateJSON, err := c.cacheRepo.Get(ctx, fmt.Sprintf(intakeStateKey, chatID))
	if err != nil || stateJSON == "" {
		return nil, fmt.Errorf("нет активной сессии")
	}
	return dto.IntakeStateFromJSON(stateJSON)
}

func (c *TelegramController) setState(ctx context.Context, chatID int64, state *dto.IntakeState) error {
	js, err := state.ToJSON()
	if err != nil {
		c.logger.Error("ошибка сериализации состояния", zap.Error(err))
		return err
	}
	return c.cacheRepo.Set(ctx, fmt.Sprintf(intakeStateKey, chatID), js, c.sessionTTL)
}

func (c *TelegramController) dropState(ctx context.Context, chatID int64) {
	if err := c.cacheRepo.Del(ctx, fmt.Sprintf(intakeStateKey, chatID)); err != nil {
		c.logger.Warn("не удалось удалить состояние сессии", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (c *TelegramController) send(ctx context.Context, chatID int64, text string) {
	if err := c.tgService.SendMessage(ctx, chatID, text); err != nil {
		c.logger.Error("ошибка отправки сообщения", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
