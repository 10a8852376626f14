package entities

import (
	"encoding/json"
	"time"

	"crm-system/pkg/types"
)

// Request — сделка/заявка на канбан-доске. Коллекции Comments, Tasks,
// Attachments и ActivityLog хранятся сериализованными JSON-массивами и
// заменяются целиком при обновлении; сюда они попадают как сырой JSON,
// чтобы read-modify-write на стороне вызывающего ничего не терял.
type Request struct {
	ID         uint64     `json:"id"`
	ClientID   uint64     `json:"clientId"`
	ManagerID  *uint64    `json:"managerId"`
	EngineerID *uint64    `json:"engineerId"`
	City       string     `json:"city"`
	Address    string     `json:"address"`
	Amount     *float64   `json:"amount"`
	Cost       *float64   `json:"cost"`
	Deadline   *time.Time `json:"deadline"`
	Info       string     `json:"info"`
	Status     string     `json:"status"`

	Comments    json.RawMessage `json:"comments"`
	Tasks       json.RawMessage `json:"tasks"`
	Attachments json.RawMessage `json:"attachments"`
	ActivityLog json.RawMessage `json:"activityLog"`

	types.BaseEntity
}

// Типовые формы элементов коллекций. Хранилище к ним не привязано,
// это контракт для вызывающих, которые собирают новый массив целиком.

type Comment struct {
	AuthorID  uint64 `json:"authorId"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type Task struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type ActivityEntry struct {
	Timestamp string `json:"timestamp"`
	Author    string `json:"author"`
	Text      string `json:"text"`
}
