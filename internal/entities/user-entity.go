// Файл: internal/entities/user-entity.go
package entities

import (
	"maintenance-system/pkg/types"
)

type User struct {
	ID    uint64 `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`

	Password string `json:"-" db:"password"`

	types.BaseEntity
}
