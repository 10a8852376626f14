package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	"crm-system/internal/repositories"
	"crm-system/pkg/constants"
)

type fakeRecordService struct {
	clients    []dto.CreateClientDTO
	requests   []dto.CreateRequestDTO
	clientErr  error
	requestErr error
}

func (f *fakeRecordService) ListRecords(_ context.Context, _ repositories.Resource) (interface{}, error) {
	panic("не используется ботом")
}

func (f *fakeRecordService) CreateDepartment(_ context.Context, _ dto.CreateDepartmentDTO) (*entities.Department, error) {
	panic("не используется ботом")
}

func (f *fakeRecordService) CreateEmployee(_ context.Context, _ dto.CreateEmployeeDTO) (*entities.Employee, error) {
	panic("не используется ботом")
}

func (f *fakeRecordService) CreateClient(_ context.Context, payload dto.CreateClientDTO) (*entities.Client, error) {
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	f.clients = append(f.clients, payload)
	return &entities.Client{
		ID:            42,
		CompanyName:   payload.CompanyName,
		ContactPerson: payload.ContactPerson,
		Contacts:      payload.Contacts,
		Region:        payload.Region,
		City:          payload.City,
		Status:        payload.Status,
	}, nil
}

func (f *fakeRecordService) CreateRequest(_ context.Context, payload dto.CreateRequestDTO) (*entities.Request, error) {
	if f.requestErr != nil {
		return nil, f.requestErr
	}
	f.requests = append(f.requests, payload)
	return &entities.Request{ID: 17, ClientID: payload.ClientID, City: payload.City, Status: payload.Status}, nil
}

func (f *fakeRecordService) UpdateRecord(_ context.Context, _ repositories.Resource, _ uint64, _ map[string]interface{}) (map[string]interface{}, error) {
	panic("не используется ботом")
}

type fakeTelegramService struct {
	sent []string
}

func (f *fakeTelegramService) SendMessage(_ context.Context, _ int64, text string) error {
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeTelegramService) SetWebhook(_ context.Context, _ string) error { return nil }

// brokenCache всегда отказывает на записи.
type brokenCache struct{}

func (brokenCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return fmt.Errorf("кеш недоступен")
}
func (brokenCache) Get(_ context.Context, _ string) (string, error) {
	return "", repositories.ErrCacheMiss
}
func (brokenCache) Del(_ context.Context, _ ...string) error { return nil }

func newTestBot(records *fakeRecordService, cache repositories.CacheRepositoryInterface) (*TelegramController, *fakeTelegramService) {
	tg := &fakeTelegramService{}
	controller := NewTelegramController(records, tg, cache, 30*time.Minute, zap.NewNop())
	return controller, tg
}

// deliver прогоняет сообщение через вебхук, как его доставил бы Telegram.
func deliver(t *testing.T, controller *TelegramController, chatID int64, text string) int {
	t.Helper()
	e := echo.New()
	body := fmt.Sprintf(`{"update_id":1,"message":{"message_id":1,"chat":{"id":%d},"text":%q}}`, chatID, text)
	req := httptest.NewRequest(http.MethodPost, "/api/telegram/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, controller.HandleTelegramWebhook(e.NewContext(req, rec)))
	return rec.Code
}

func TestIntake_FullConversation(t *testing.T) {
	records := &fakeRecordService{}
	controller, tg := newTestBot(records, repositories.NewMemoryCacheRepository())
	chatID := int64(1001)

	for _, text := range []string{
		"/start",
		"Acme Co",
		"Jane Doe",
		"555-0100",
		"North",
		"Metropolis",
		"ул. Ленина, 1",
		"2026-12-25",
		"Нужен монтаж вентиляции",
	} {
		assert.Equal(t, http.StatusOK, deliver(t, controller, chatID, text))
	}

	// Клиент создан ровно один раз, со статусом нового лида.
	require.Len(t, records.clients, 1)
	client := records.clients[0]
	assert.Equal(t, "Acme Co", client.CompanyName)
	assert.Equal(t, "Jane Doe", client.ContactPerson)
	assert.Equal(t, "555-0100", client.Contacts)
	assert.Equal(t, "North", client.Region)
	assert.Equal(t, "Metropolis", client.City)
	assert.Equal(t, constants.ClientStatusLead, client.Status)

	// Заявка привязана к созданному клиенту и унаследовала его город.
	require.Len(t, records.requests, 1)
	request := records.requests[0]
	assert.Equal(t, uint64(42), request.ClientID)
	assert.Equal(t, "Metropolis", request.City)
	assert.Equal(t, "ул. Ленина, 1", request.Address)
	assert.Equal(t, "2026-12-25", request.Deadline.String)
	assert.Equal(t, "Нужен монтаж вентиляции", request.Info)
	assert.Equal(t, constants.RequestStatusNew, request.Status)

	require.NotEmpty(t, tg.sent)
	assert.Equal(t, "Здравствуйте! Давайте зарегистрируем вас как нового клиента. Введите название вашей компании:", tg.sent[0])
	assert.Contains(t, tg.sent, `Клиент "Acme Co" успешно создан!`)
	assert.Equal(t, "Отлично! Ваша заявка №17 успешно создана и передана в работу.", tg.sent[len(tg.sent)-1])

	// Диалог завершён, сессии больше нет.
	_, err := controller.cacheRepo.Get(context.Background(), fmt.Sprintf(intakeStateKey, chatID))
	assert.ErrorIs(t, err, repositories.ErrCacheMiss)
}

func TestIntake_NoSessionPrompt(t *testing.T) {
	controller, tg := newTestBot(&fakeRecordService{}, repositories.NewMemoryCacheRepository())

	deliver(t, controller, 2002, "просто текст")

	require.Len(t, tg.sent, 1)
	assert.Equal(t, "Пожалуйста, начните с отправки команды /start", tg.sent[0])
}

func TestIntake_StartResetsSession(t *testing.T) {
	records := &fakeRecordService{}
	controller, tg := newTestBot(records, repositories.NewMemoryCacheRepository())
	chatID := int64(3003)

	deliver(t, controller, chatID, "/start")
	deliver(t, controller, chatID, "Старая компания")
	deliver(t, controller, chatID, "/start")
	deliver(t, controller, chatID, "Новая компания")

	// После повторного /start диалог снова ждёт ФИО.
	assert.Equal(t, "Отлично! Теперь введите ваше ФИО (полностью):", tg.sent[len(tg.sent)-1])

	state, err := controller.getState(context.Background(), chatID)
	require.NoError(t, err)
	assert.Equal(t, dto.StepFullName, state.Step)
	assert.Equal(t, "Новая компания", state.Client.CompanyName)
	assert.Empty(t, records.clients)
}

func TestIntake_ClientCreateFailureEndsSession(t *testing.T) {
	records := &fakeRecordService{clientErr: fmt.Errorf("база недоступна")}
	controller, tg := newTestBot(records, repositories.NewMemoryCacheRepository())
	chatID := int64(4004)

	for _, text := range []string{"/start", "Acme Co", "Jane Doe", "555-0100", "North", "Metropolis"} {
		deliver(t, controller, chatID, text)
	}

	assert.Contains(t, tg.sent, "Произошла ошибка при создании клиента. Попробуйте позже.")
	assert.Empty(t, records.requests)

	// Сессия сброшена: следующее сообщение получает подсказку про /start.
	deliver(t, controller, chatID, "адрес объекта")
	assert.Equal(t, "Пожалуйста, начните с отправки команды /start", tg.sent[len(tg.sent)-1])
}

func TestIntake_RequestCreateFailureEndsSession(t *testing.T) {
	records := &fakeRecordService{requestErr: fmt.Errorf("база недоступна")}
	controller, tg := newTestBot(records, repositories.NewMemoryCacheRepository())
	chatID := int64(5005)

	for _, text := range []string{
		"/start", "Acme Co", "Jane Doe", "555-0100", "North", "Metropolis",
		"ул. Ленина, 1", "2026-12-25", "Описание",
	} {
		deliver(t, controller, chatID, text)
	}

	require.Len(t, records.clients, 1)
	assert.Contains(t, tg.sent, "Произошла ошибка при создании заявки. Попробуйте позже.")

	deliver(t, controller, chatID, "ещё текст")
	assert.Equal(t, "Пожалуйста, начните с отправки команды /start", tg.sent[len(tg.sent)-1])
}

func TestIntake_SessionStoreFailure(t *testing.T) {
	controller, tg := newTestBot(&fakeRecordService{}, brokenCache{})

	deliver(t, controller, 6006, "/start")

	require.Len(t, tg.sent, 1)
	assert.Equal(t, "Произошла ошибка. Попробуйте позже.", tg.sent[0])
}

func TestWebhook_IgnoresServiceUpdates(t *testing.T) {
	controller, tg := newTestBot(&fakeRecordService{}, repositories.NewMemoryCacheRepository())
	e := echo.New()

	for _, body := range []string{
		`{"update_id":1}`,
		`{"update_id":2,"message":{"message_id":1,"chat":{"id":1},"text":"   "}}`,
		`не json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/telegram/webhook", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, controller.HandleTelegramWebhook(e.NewContext(req, rec)))
		// Telegram повторяет доставку на любой не-200 ответ.
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Empty(t, tg.sent)
}
