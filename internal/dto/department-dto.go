package dto

import "github.com/aarondl/null/v8"

type CreateDepartmentDTO struct {
	Name     string   `json:"name" validate:"required"`
	ParentID null.Int `json:"parentId" validate:"omitempty,gt=0"`
}
