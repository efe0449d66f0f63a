package dto

// DashboardStatsDTO - карточки сводки на главной странице.
type DashboardStatsDTO struct {
	OpenRequests           int `json:"open_requests"`
	CriticalEquipmentCount int `json:"critical_equipment_count"`
	TechnicianLoadPct      int `json:"technician_load_pct"`
}
