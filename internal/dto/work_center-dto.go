package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateWorkCenterDTO struct {
	Name              string      `json:"name" validate:"required"`
	Code              null.String `json:"code"`
	Tag               null.String `json:"tag"`
	CostPerHour       float64     `json:"cost_per_hour"`
	CapacityPerHour   float64     `json:"capacity_per_hour"`
	TimeEfficiencyPct float64     `json:"time_efficiency_pct"`
	OeeTargetPct      float64     `json:"oee_target_pct"`
	Status            string      `json:"status"`
}

type AddAlternativeDTO struct {
	AlternativeWorkCenterID uint64 `json:"alternative_work_center_id" validate:"required,gt=0"`
}

type WorkCenterDTO struct {
	ID                uint64      `json:"id"`
	Name              string      `json:"name"`
	Code              null.String `json:"code"`
	Tag               null.String `json:"tag"`
	CostPerHour       float64     `json:"cost_per_hour"`
	CapacityPerHour   float64     `json:"capacity_per_hour"`
	TimeEfficiencyPct float64     `json:"time_efficiency_pct"`
	OeeTargetPct      float64     `json:"oee_target_pct"`
	Status            string      `json:"status"`
	CreatedAt         string      `json:"created_at"`
}

type ShortWorkCenterDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
