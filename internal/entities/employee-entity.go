package entities

import "crm-system/pkg/types"

type Employee struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	DepartmentID *uint64 `json:"departmentId"`

	types.BaseEntity
}
