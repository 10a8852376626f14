package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "crm-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Контракт API: успех — тело как есть, ошибка — {"error": "<сообщение>"}.

type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorList сопоставляет сентинельные ошибки хранилища HTTP-кодам.
var ErrorList = map[error]int{
	apperrors.ErrUnknownResource:  http.StatusNotFound,
	apperrors.ErrNotFound:         http.StatusNotFound,
	apperrors.ErrNoFieldsProvided: http.StatusBadRequest,
	apperrors.ErrBadRequest:       http.StatusBadRequest,
}

func SuccessResponse(ctx echo.Context, body interface{}, code int) error {
	return ctx.JSON(code, body)
}

func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		return ctx.JSON(httpErr.Code, ErrorBody{Error: httpErr.Message})
	}

	for sentinel, code := range ErrorList {
		if errors.Is(err, sentinel) {
			return ctx.JSON(code, ErrorBody{Error: sentinel.Error()})
		}
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return ctx.JSON(http.StatusBadRequest, ErrorBody{Error: invalidInput.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return ctx.JSON(http.StatusBadRequest, ErrorBody{Error: "Ошибка валидации: " + strings.Join(msgs, "; ")})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return ctx.JSON(http.StatusInternalServerError, ErrorBody{Error: err.Error()})
}
