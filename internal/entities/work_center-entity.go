package entities

import (
	"maintenance-system/pkg/types"
)

type WorkCenter struct {
	ID                uint64  `json:"id" db:"id"`
	Name              string  `json:"name" db:"name"`
	Code              *string `json:"code" db:"code"`
	Tag               *string `json:"tag" db:"tag"`
	CostPerHour       float64 `json:"cost_per_hour" db:"cost_per_hour"`
	CapacityPerHour   float64 `json:"capacity_per_hour" db:"capacity_per_hour"`
	TimeEfficiencyPct float64 `json:"time_efficiency_pct" db:"time_efficiency_pct"`
	OeeTargetPct      float64 `json:"oee_target_pct" db:"oee_target_pct"`
	Status            string  `json:"status" db:"status"`

	types.BaseEntity
}
