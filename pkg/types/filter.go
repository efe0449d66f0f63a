package types

// Filter describes list query parameters supported by repositories.
type Filter struct {
	Search       string  `json:"search,omitempty"`
	EquipmentID  *uint64 `json:"equipment_id,omitempty"`
	WorkCenterID *uint64 `json:"work_center_id,omitempty"`
}
