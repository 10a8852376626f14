package dto

import "github.com/aarondl/null/v8"

type CreateEmployeeDTO struct {
	Name         string   `json:"name" validate:"required"`
	Role         string   `json:"role" validate:"required"`
	DepartmentID null.Int `json:"departmentId" validate:"omitempty,gt=0"`
}
