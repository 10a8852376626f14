package dto

import (
	"encoding/json"
	"fmt"
)

// IntakeStep — текущий шаг линейного диалога регистрации.
// Переходы только вперёд, строго по порядку, без пропусков.
type IntakeStep string

const (
	StepCompanyName IntakeStep = "companyName"
	StepFullName    IntakeStep = "fullName"
	StepContacts    IntakeStep = "contacts"
	StepRegion      IntakeStep = "region"
	StepCity        IntakeStep = "city"
	StepAddress     IntakeStep = "address"
	StepDeadline    IntakeStep = "deadline"
	StepInfo        IntakeStep = "info"
)

// IntakeState — состояние диалога одного чата: накопленные черновики
// клиента и заявки. Сериализуется в JSON для хранения в сессионном кеше.
type IntakeState struct {
	Step    IntakeStep       `json:"step"`
	Client  CreateClientDTO  `json:"client"`
	Request CreateRequestDTO `json:"request"`
}

func NewIntakeState() *IntakeState {
	return &IntakeState{Step: StepCompanyName}
}

func (s *IntakeState) ToJSON() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации состояния: %w", err)
	}
	return string(data), nil
}

func IntakeStateFromJSON(data string) (*IntakeState, error) {
	var state IntakeState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("ошибка десериализации состояния: %w", err)
	}
	return &state, nil
}
