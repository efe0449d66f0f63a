package entities

import (
	"maintenance-system/pkg/types"
)

type Team struct {
	ID      uint64 `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Members string `json:"members" db:"members"`

	types.BaseEntity
}
