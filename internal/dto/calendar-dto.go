package dto

// CalendarEventDTO - производное событие календаря. Времени окончания в
// данных нет, поэтому каждое событие отображается часовым слотом.
type CalendarEventDTO struct {
	ID             uint64 `json:"id"`
	Title          string `json:"title"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Status         string `json:"status"`
	EquipmentLabel string `json:"equipment_label"`
}

type CalendarDayDTO struct {
	Date   string             `json:"date"`
	Events []CalendarEventDTO `json:"events"`
}

type CalendarWeekDTO struct {
	Reference string           `json:"reference"`
	Days      []CalendarDayDTO `json:"days"`
}

// CalendarMonthDTO - сетка месяца. Ведущие nil-дни выравнивают первую
// строку сетки на понедельник.
type CalendarMonthDTO struct {
	Reference string            `json:"reference"`
	Days      []*CalendarDayDTO `json:"days"`
}
