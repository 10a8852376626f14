package dto

import (
	"encoding/json"

	"github.com/aarondl/null/v8"
)

type CreateRequestDTO struct {
	ClientID   uint64       `json:"clientId" validate:"required,gt=0"`
	ManagerID  null.Int     `json:"managerId" validate:"omitempty,gt=0"`
	EngineerID null.Int     `json:"engineerId" validate:"omitempty,gt=0"`
	City       string       `json:"city" validate:"required"`
	Address    string       `json:"address" validate:"required"`
	Amount     null.Float64 `json:"amount"`
	Cost       null.Float64 `json:"cost"`
	// Пустая строка означает отсутствие срока и уходит в БД как NULL.
	Deadline null.String `json:"deadline"`
	Info     string      `json:"info"`
	// Пустой статус хранилище заменит на "Новая заявка".
	Status string `json:"status"`

	// Коллекции при создании обычно не передаются и по умолчанию пустые.
	Comments    json.RawMessage `json:"comments"`
	Tasks       json.RawMessage `json:"tasks"`
	Attachments json.RawMessage `json:"attachments"`
	ActivityLog json.RawMessage `json:"activityLog"`
}
