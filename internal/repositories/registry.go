package repositories

import (
	apperrors "crm-system/pkg/errors"
)

// Resource — закрытый перечислимый тип четырёх видов записей. Вся
// диспетчеризация идёт исчерпывающим switch по нему, строковое имя
// ресурса разбирается один раз на границе HTTP.
type Resource int

const (
	ResourceDepartments Resource = iota
	ResourceEmployees
	ResourceClients
	ResourceRequests
)

// ParseResource разбирает имя ресурса из пути запроса.
func ParseResource(name string) (Resource, error) {
	switch name {
	case "departments":
		return ResourceDepartments, nil
	case "employees":
		return ResourceEmployees, nil
	case "clients":
		return ResourceClients, nil
	case "requests":
		return ResourceRequests, nil
	default:
		return 0, apperrors.ErrUnknownResource
	}
}

func (r Resource) Table() string {
	switch r {
	case ResourceDepartments:
		return "departments"
	case ResourceEmployees:
		return "employees"
	case ResourceClients:
		return "clients"
	case ResourceRequests:
		return "requests"
	}
	panic("неизвестный ресурс")
}

// Таблицы имён полей: внешнее camelCase-имя → колонка БД. Имена колонок
// в запросы попадают только отсюда, никогда из пользовательского ввода.
// id, created_at и updated_at через PATCH не изменяются и в таблицах
// отсутствуют.
var (
	departmentFieldColumns = map[string]string{
		"name":     "name",
		"parentId": "parent_id",
	}
	employeeFieldColumns = map[string]string{
		"name":         "name",
		"role":         "role",
		"departmentId": "department_id",
	}
	clientFieldColumns = map[string]string{
		"companyName":   "company_name",
		"contactPerson": "contact_person",
		"contacts":      "contacts",
		"region":        "region",
		"city":          "city",
		"status":        "status",
	}
	requestFieldColumns = map[string]string{
		"clientId":    "client_id",
		"managerId":   "manager_id",
		"engineerId":  "engineer_id",
		"city":        "city",
		"address":     "address",
		"amount":      "amount",
		"cost":        "cost",
		"deadline":    "deadline",
		"info":        "info",
		"status":      "status",
		"comments":    "comments",
		"tasks":       "tasks",
		"attachments": "attachments",
		"activityLog": "activity_log",
	}
)

func (r Resource) FieldColumns() map[string]string {
	switch r {
	case ResourceDepartments:
		return departmentFieldColumns
	case ResourceEmployees:
		return employeeFieldColumns
	case ResourceClients:
		return clientFieldColumns
	case ResourceRequests:
		return requestFieldColumns
	}
	panic("неизвестный ресурс")
}

// structuredFields — поля-коллекции заявки, которые сериализуются в JSON
// при записи и разбираются обратно в массивы при чтении.
var structuredFields = map[string]struct{}{
	"comments":    {},
	"tasks":       {},
	"attachments": {},
	"activityLog": {},
}

func (r Resource) IsStructuredField(key string) bool {
	if r != ResourceRequests {
		return false
	}
	_, ok := structuredFields[key]
	return ok
}
