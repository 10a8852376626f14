package entities

import "crm-system/pkg/types"

// Client — карточка клиента. Status берётся из constants.ClientStatuses,
// хранилище принадлежность не проверяет.
type Client struct {
	ID            uint64 `json:"id"`
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Contacts      string `json:"contacts"`
	Region        string `json:"region"`
	City          string `json:"city"`
	Status        string `json:"status"`

	types.BaseEntity
}
