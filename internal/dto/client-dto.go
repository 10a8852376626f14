package dto

type CreateClientDTO struct {
	CompanyName   string `json:"companyName" validate:"required"`
	ContactPerson string `json:"contactPerson" validate:"required"`
	Contacts      string `json:"contacts"`
	Region        string `json:"region"`
	City          string `json:"city"`
	// Пустой статус хранилище заменит на "Лид".
	Status string `json:"status"`
}
