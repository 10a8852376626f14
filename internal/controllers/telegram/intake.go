// internal/controllers/telegram/intake.go
package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"crm-system/internal/dto"
	"crm-system/pkg/constants"
)

// Линейный диалог: каждый шаг принимает один ответ и переводит сессию
// на следующий шаг, строго вперёд. /start безусловно начинает сессию
// заново, любой текст без сессии получает подсказку начать сначала.
func (c *TelegramController) handleMessage(ctx context.Context, chatID int64, text string) {
	if strings.HasPrefix(text, "/start") {
		c.handleStartCommand(ctx, chatID)
		return
	}

	state, err := c.getState(ctx, chatID)
	if err != nil {
		c.send(ctx, chatID, "Пожалуйста, начните с отправки команды /start")
		return
	}

	c.advance(ctx, chatID, state, text)
}

func (c *TelegramController) handleStartCommand(ctx context.Context, chatID int64) {
	state := dto.NewIntakeState()
	if err := c.setState(ctx, chatID, state); err != nil {
		c.send(ctx, chatID, "Произошла ошибка. Попробуйте позже.")
		return
	}
	c.send(ctx, chatID, "Здравствуйте! Давайте зарегистрируем вас как нового клиента. Введите название вашей компании:")
}

func (c *TelegramController) advance(ctx context.Context, chatID int64, state *dto.IntakeState, text string) {
	switch state.Step {
	case dto.StepCompanyName:
		state.Client.CompanyName = text
		c.nextStep(ctx, chatID, state, dto.StepFullName,
			"Отлично! Теперь введите ваше ФИО (полностью):")

	case dto.StepFullName:
		state.Client.ContactPerson = text
		c.nextStep(ctx, chatID, state, dto.StepContacts,
			"Принято. Укажите ваши контакты (телефон, email):")

	case dto.StepContacts:
		state.Client.Contacts = text
		c.nextStep(ctx, chatID, state, dto.StepRegion,
			"Спасибо. Укажите ваш регион:")

	case dto.StepRegion:
		state.Client.Region = text
		c.nextStep(ctx, chatID, state, dto.StepCity,
			"И последний шаг для регистрации клиента - ваш город:")

	case dto.StepCity:
		state.Client.City = text
		state.Client.Status = constants.ClientStatusLead
		c.createClient(ctx, chatID, state)

	case dto.StepAddress:
		state.Request.Address = text
		c.nextStep(ctx, chatID, state, dto.StepDeadline,
			"Адрес принят. Укажите желаемый срок выполнения (например, 2025-12-25):")

	case dto.StepDeadline:
		state.Request.Deadline = null.StringFrom(text)
		c.nextStep(ctx, chatID, state, dto.StepInfo,
			"Отлично. Напишите дополнительную информацию по заявке:")

	case dto.StepInfo:
		state.Request.Info = text
		state.Request.Status = constants.RequestStatusNew
		c.createRequest(ctx, chatID, state)

	default:
		c.logger.Warn("сессия в неизвестном шаге, сбрасываем",
			zap.Int64("chat_id", chatID), zap.String("step", string(state.Step)))
		c.dropState(ctx, chatID)
		c.send(ctx, chatID, "Пожалуйста, начните с отправки команды /start")
	}
}

func (c *TelegramController) nextStep(ctx context.Context, chatID int64, state *dto.IntakeState, step dto.IntakeStep, prompt string) {
	state.Step = step
	if err := c.setState(ctx, chatID, state); err != nil {
		c.dropState(ctx, chatID)
		c.send(ctx, chatID, "Произошла ошибка. Попробуйте позже.")
		return
	}
	c.send(ctx, chatID, prompt)
}

// Сбой создания клиента фатален для сессии: повтор без новых данных
// почти наверняка упадёт так же, поэтому диалог начинается заново.
func (c *TelegramController) createClient(ctx context.Context, chatID int64, state *dto.IntakeState) {
	c.send(ctx, chatID, "Регистрирую клиента...")

	client, err := c.recordService.CreateClient(ctx, state.Client)
	if err != nil {
		c.logger.Error("ошибка при создании клиента", zap.Int64("chat_id", chatID), zap.Error(err))
		c.send(ctx, chatID, "Произошла ошибка при создании клиента. Попробуйте позже.")
		c.dropState(ctx, chatID)
		return
	}

	c.send(ctx, chatID, fmt.Sprintf("Клиент \"%s\" успешно создан!", client.CompanyName))

	state.Request.ClientID = client.ID
	state.Request.City = client.City
	c.nextStep(ctx, chatID, state, dto.StepAddress,
		"Теперь давайте создадим заявку. Введите адрес объекта:")
}

// Клиент к этому моменту уже создан; при сбое заявки он остаётся в базе
// как осиротевший лид — откат не выполняется.
func (c *TelegramController) createRequest(ctx context.Context, chatID int64, state *dto.IntakeState) {
	c.send(ctx, chatID, "Создаю заявку...")
	defer c.dropState(ctx, chatID)

	request, err := c.recordService.CreateRequest(ctx, state.Request)
	if err != nil {
		c.logger.Error("ошибка при создании заявки", zap.Int64("chat_id", chatID), zap.Error(err))
		c.send(ctx, chatID, "Произошла ошибка при создании заявки. Попробуйте позже.")
		return
	}

	c.send(ctx, chatID, fmt.Sprintf("Отлично! Ваша заявка №%d успешно создана и передана в работу.", request.ID))
}
