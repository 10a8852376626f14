package errors

import "fmt"

var (
	// Ресурсы и записи
	ErrUnknownResource  = fmt.Errorf("ресурс не найден")
	ErrNotFound         = fmt.Errorf("запись не найдена")
	ErrNoFieldsProvided = fmt.Errorf("нет полей для обновления")

	// Общие
	ErrBadRequest = fmt.Errorf("неверный запрос")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError несёт код ответа вместе с сообщением для клиента.
// Err хранит первопричину для логов, наружу она не уходит.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string { return e.Message }

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}
