package entities

import "crm-system/pkg/types"

// Department — узел дерева подразделений. Корень имеет ParentID = nil.
// Циклы не проверяются: инвариант "дерево, а не граф" предполагается.
type Department struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	ParentID *uint64 `json:"parentId"`

	types.BaseEntity
}
