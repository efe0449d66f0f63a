package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	Name              string      `json:"name" validate:"required"`
	Category          null.String `json:"category"`
	Department        null.String `json:"department"`
	Location          null.String `json:"location"`
	SerialNumber      null.String `json:"serial_number"`
	MaintenanceTeamID null.Uint64 `json:"maintenance_team_id"`
	WorkCenterID      null.Uint64 `json:"work_center_id"`
}

type EquipmentDTO struct {
	ID                uint64      `json:"id"`
	Name              string      `json:"name"`
	Category          null.String `json:"category"`
	Department        null.String `json:"department"`
	Location          null.String `json:"location"`
	SerialNumber      null.String `json:"serial_number"`
	MaintenanceTeamID null.Uint64 `json:"maintenance_team_id"`
	WorkCenterID      null.Uint64 `json:"work_center_id"`
	TeamName          null.String `json:"team_name"`
	CreatedAt         string      `json:"created_at"`
}

type ShortEquipmentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
