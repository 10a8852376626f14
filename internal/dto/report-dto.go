package dto

import "time"

// RequestReportRow — строка отчёта по заявкам: заявка плюс имена
// клиента, менеджера и инженера.
type RequestReportRow struct {
	ID           uint64     `json:"id"`
	CompanyName  string     `json:"companyName"`
	ManagerName  *string    `json:"managerName"`
	EngineerName *string    `json:"engineerName"`
	City         string     `json:"city"`
	Address      string     `json:"address"`
	Amount       *float64   `json:"amount"`
	Cost         *float64   `json:"cost"`
	Deadline     *time.Time `json:"deadline"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// DashboardDTO — сводные счётчики для дашборда.
type DashboardDTO struct {
	TotalClients     uint64            `json:"totalClients"`
	TotalRequests    uint64            `json:"totalRequests"`
	ClientsByStatus  map[string]uint64 `json:"clientsByStatus"`
	RequestsByStatus map[string]uint64 `json:"requestsByStatus"`
	// Сумма по выигранным сделкам (constants.SuccessfulDealStatuses).
	DealsAmount float64 `json:"dealsAmount"`
}
