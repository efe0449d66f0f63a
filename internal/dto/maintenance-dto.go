package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateMaintenanceRequestDTO struct {
	Subject       string      `json:"subject" validate:"required"`
	Type          string      `json:"type" validate:"required,maintenance_type"`
	EquipmentID   null.Uint64 `json:"equipment_id"`
	WorkCenterID  null.Uint64 `json:"work_center_id"`
	TeamID        null.Uint64 `json:"team_id"`
	ScheduledDate null.String `json:"scheduled_date" validate:"omitempty,schedule_date"`
}

type AssignMaintenanceRequestDTO struct {
	UserID uint64 `json:"user_id" validate:"required,gt=0"`
}

type UpdateMaintenanceStatusDTO struct {
	Status        string       `json:"status" validate:"required"`
	DurationHours null.Float64 `json:"duration_hours"`
}

type MaintenanceRequestDTO struct {
	ID      uint64 `json:"id"`
	Subject string `json:"subject"`
	Type    string `json:"type"`

	EquipmentID    null.Uint64 `json:"equipment_id"`
	EquipmentName  null.String `json:"equipment_name"`
	SerialNumber   null.String `json:"serial_number"`
	Department     null.String `json:"department"`
	WorkCenterID   null.Uint64 `json:"work_center_id"`
	WorkCenterName null.String `json:"work_center_name"`

	TeamID   null.Uint64 `json:"team_id"`
	TeamName null.String `json:"team_name"`
	Category null.String `json:"category"`

	ScheduledDate null.String `json:"scheduled_date"`

	Status           string       `json:"status"`
	StatusRank       int          `json:"status_rank"`
	AssignedToUserID null.Uint64  `json:"assigned_to_user_id"`
	AssignedToName   null.String  `json:"assigned_to_name"`
	DurationHours    null.Float64 `json:"duration_hours"`

	CreatedByUserID uint64      `json:"created_by_user_id"`
	CreatedByName   null.String `json:"created_by_name"`
	CreatedAt       string      `json:"created_at"`
}
