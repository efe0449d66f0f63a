package seeders

// Демонстрационный набор данных для локального стенда.

var usersData = []struct {
	Name     string
	Email    string
	Password string
}{
	{Name: "John Doe", Email: "john@example.com", Password: "password123"},
	{Name: "Jane Smith", Email: "jane@example.com", Password: "password123"},
	{Name: "Bob Johnson", Email: "bob@example.com", Password: "password123"},
}

var teamsData = []struct {
	Name    string
	Members string
}{
	{Name: "Maintenance Team A", Members: "John Doe, Jane Smith, Bob Johnson, Alice Brown, Tom White"},
	{Name: "Maintenance Team B", Members: "Mike Green, Sara Black, Pete Grey, Ann Blue"},
}

var workCentersData = []struct {
	Name              string
	Code              string
	Tag               string
	CostPerHour       float64
	CapacityPerHour   float64
	TimeEfficiencyPct float64
	OeeTargetPct      float64
}{
	{Name: "Machine Shop", Code: "WC-001", Tag: "Building A", CostPerHour: 120, CapacityPerHour: 8, TimeEfficiencyPct: 85, OeeTargetPct: 90},
	{Name: "Welding Department", Code: "WC-002", Tag: "Building B", CostPerHour: 95, CapacityPerHour: 6, TimeEfficiencyPct: 80, OeeTargetPct: 85},
	{Name: "Assembly Line", Code: "WC-003", Tag: "Building C", CostPerHour: 150, CapacityPerHour: 12, TimeEfficiencyPct: 92, OeeTargetPct: 95},
}

var equipmentsData = []struct {
	Name           string
	Category       string
	Department     string
	SerialNumber   string
	TeamName       string
	WorkCenterName string
}{
	{Name: "CNC Machine A", Category: "hydraulics", Department: "Machining", SerialNumber: "CNC-A-0001", TeamName: "Maintenance Team A", WorkCenterName: "Machine Shop"},
	{Name: "Hydraulic Press", Category: "filters", Department: "Machining", SerialNumber: "HP-0002", TeamName: "Maintenance Team A", WorkCenterName: "Machine Shop"},
	{Name: "Welding Station B", Category: "consumables", Department: "Welding", SerialNumber: "WS-B-0003", TeamName: "Maintenance Team B", WorkCenterName: "Welding Department"},
	{Name: "Assembly Robot", Category: "calibration", Department: "Assembly", SerialNumber: "AR-0004", TeamName: "Maintenance Team B", WorkCenterName: "Assembly Line"},
}

// Даты нарочно в разных форматах: календарь должен переваривать и голую
// дату, и дату со временем.
var maintenanceData = []struct {
	Subject       string
	Type          string
	EquipmentName string
	ScheduledDate string
	Status        string
	AssigneeEmail string
	CreatorEmail  string
}{
	{
		Subject:       "Urgent: CNC Machine A - Oil leak",
		Type:          "corrective",
		EquipmentName: "CNC Machine A",
		ScheduledDate: "2026-09-01T10:30:00",
		Status:        "in_progress",
		AssigneeEmail: "john@example.com",
		CreatorEmail:  "jane@example.com",
	},
	{
		Subject:       "Preventive maintenance - Hydraulic Press filters",
		Type:          "preventive",
		EquipmentName: "Hydraulic Press",
		ScheduledDate: "2026-09-03",
		Status:        "new",
		CreatorEmail:  "john@example.com",
	},
	{
		Subject:       "Welding Station B - electrode replacement",
		Type:          "preventive",
		EquipmentName: "Welding Station B",
		ScheduledDate: "2026-08-24",
		Status:        "repaired",
		AssigneeEmail: "jane@example.com",
		CreatorEmail:  "bob@example.com",
	},
	{
		Subject:       "Assembly Robot - calibration needed",
		Type:          "corrective",
		EquipmentName: "Assembly Robot",
		ScheduledDate: "2026-09-02T14:00:00",
		Status:        "new",
		CreatorEmail:  "jane@example.com",
	},
}
