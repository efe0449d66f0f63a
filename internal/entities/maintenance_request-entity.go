package entities

import (
	"time"
)

type MaintenanceRequest struct {
	ID      uint64 `json:"id" db:"id"`
	Subject string `json:"subject" db:"subject"`
	Type    string `json:"type" db:"type"`

	EquipmentID  *uint64 `json:"equipment_id" db:"equipment_id"`
	WorkCenterID *uint64 `json:"work_center_id" db:"work_center_id"`

	TeamID *uint64 `json:"team_id" db:"team_id"`
	// Снимок категории оборудования на момент создания. Правки самого
	// оборудования задним числом заявку не меняют.
	Category *string `json:"category" db:"category"`

	// Дата хранится сырой строкой: наследованные записи могут содержать
	// как голую дату, так и дату со временем, а календарь сам решает,
	// что с ними делать.
	ScheduledDate *string `json:"scheduled_date" db:"scheduled_date"`

	Status           string    `json:"status" db:"status"`
	AssignedToUserID *uint64   `json:"assigned_to_user_id" db:"assigned_to_user_id"`
	DurationHours    *float64  `json:"duration_hours" db:"duration_hours"`
	CreatedByUserID  uint64    `json:"created_by_user_id" db:"created_by_user_id"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`

	// Поля для связанных данных (не колонки в таблице)
	EquipmentName  *string `db:"-" json:"equipment_name,omitempty"`
	SerialNumber   *string `db:"-" json:"serial_number,omitempty"`
	Department     *string `db:"-" json:"department,omitempty"`
	WorkCenterName *string `db:"-" json:"work_center_name,omitempty"`
	TeamName       *string `db:"-" json:"team_name,omitempty"`
	AssignedToName *string `db:"-" json:"assigned_to_name,omitempty"`
	CreatedByName  *string `db:"-" json:"created_by_name,omitempty"`
}

// Target восстанавливает цель заявки из пары колонок.
func (r *MaintenanceRequest) Target() (Target, error) {
	return NewTarget(r.EquipmentID, r.WorkCenterID)
}

// HasAssignee - у заявки есть исполнитель.
func (r *MaintenanceRequest) HasAssignee() bool {
	return r.AssignedToUserID != nil && *r.AssignedToUserID != 0
}
