package entities

import (
	"maintenance-system/pkg/types"
)

type Equipment struct {
	ID                uint64  `json:"id" db:"id"`
	Name              string  `json:"name" db:"name"`
	Category          *string `json:"category" db:"category"`
	Department        *string `json:"department" db:"department"`
	Location          *string `json:"location" db:"location"`
	SerialNumber      *string `json:"serial_number" db:"serial_number"`
	MaintenanceTeamID *uint64 `json:"maintenance_team_id" db:"maintenance_team_id"`
	WorkCenterID      *uint64 `json:"work_center_id" db:"work_center_id"`

	types.BaseEntity

	// Поля для связанных данных (не колонки в таблице)
	TeamName *string `db:"-" json:"team_name,omitempty"`
}
