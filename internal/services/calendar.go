package services

import (
	"context"
	"iter"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

const defaultEventTitle = "Scheduled Maintenance"

type CalendarServiceInterface interface {
	GetEvents(ctx context.Context) ([]dto.CalendarEventDTO, error)
	GetWeek(ctx context.Context, reference time.Time) (*dto.CalendarWeekDTO, error)
	GetMonth(ctx context.Context, reference time.Time) (*dto.CalendarMonthDTO, error)
}

type CalendarService struct {
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	logger          *zap.Logger
}

func NewCalendarService(maintenanceRepo repositories.MaintenanceRepositoryInterface, logger *zap.Logger) CalendarServiceInterface {
	return &CalendarService{maintenanceRepo: maintenanceRepo, logger: logger}
}

// projectEvents - ленивая проекция заявок в события календаря.
// Заявки с нечитаемой датой молча пропускаются: наследованные данные
// не должны ронять календарь целиком.
func projectEvents(requests []entities.MaintenanceRequest) iter.Seq[dto.CalendarEventDTO] {
	return func(yield func(dto.CalendarEventDTO) bool) {
		for i := range requests {
			event, ok := projectEvent(&requests[i])
			if !ok {
				continue
			}
			if !yield(event) {
				return
			}
		}
	}
}

func projectEvent(m *entities.MaintenanceRequest) (dto.CalendarEventDTO, bool) {
	if m.ScheduledDate == nil {
		return dto.CalendarEventDTO{}, false
	}

	moment, err := utils.ParseScheduledDate(*m.ScheduledDate)
	if err != nil {
		return dto.CalendarEventDTO{}, false
	}

	start := moment
	// Голая дата парсится в локальную полночь; такие заявки получают
	// слот по умолчанию 09:00-10:00.
	if moment.Hour() == 0 && moment.Minute() == 0 && moment.Second() == 0 {
		start = time.Date(moment.Year(), moment.Month(), moment.Day(), 9, 0, 0, 0, moment.Location())
	}
	end := start.Add(time.Hour)

	title := m.Subject
	if title == "" {
		title = defaultEventTitle
	}

	label := ""
	switch {
	case m.EquipmentName != nil && *m.EquipmentName != "":
		label = *m.EquipmentName
	case m.WorkCenterName != nil && *m.WorkCenterName != "":
		label = *m.WorkCenterName
	}

	return dto.CalendarEventDTO{
		ID:             m.ID,
		Title:          title,
		Date:           utils.FormatDateOnly(start),
		StartTime:      utils.FormatHHMM(start),
		EndTime:        utils.FormatHHMM(end),
		Status:         m.Status,
		EquipmentLabel: label,
	}, true
}

func (s *CalendarService) GetEvents(ctx context.Context) ([]dto.CalendarEventDTO, error) {
	requests, err := s.maintenanceRepo.GetScheduledRequests(ctx)
	if err != nil {
		s.logger.Error("не удалось получить заявки для календаря", zap.Error(err))
		return nil, err
	}

	events := make([]dto.CalendarEventDTO, 0, len(requests))
	for event := range projectEvents(requests) {
		events = append(events, event)
	}
	return events, nil
}

func (s *CalendarService) GetWeek(ctx context.Context, reference time.Time) (*dto.CalendarWeekDTO, error) {
	events, err := s.GetEvents(ctx)
	if err != nil {
		return nil, err
	}

	days := WeekDays(reference)
	week := &dto.CalendarWeekDTO{
		Reference: utils.FormatDateOnly(reference),
		Days:      make([]dto.CalendarDayDTO, 0, len(days)),
	}
	for _, day := range days {
		week.Days = append(week.Days, buildDay(day, events))
	}
	return week, nil
}

func (s *CalendarService) GetMonth(ctx context.Context, reference time.Time) (*dto.CalendarMonthDTO, error) {
	events, err := s.GetEvents(ctx)
	if err != nil {
		return nil, err
	}

	month := &dto.CalendarMonthDTO{
		Reference: utils.FormatDateOnly(reference),
		Days:      make([]*dto.CalendarDayDTO, 0, 42),
	}
	for _, day := range MonthDays(reference) {
		if day == nil {
			month.Days = append(month.Days, nil)
			continue
		}
		built := buildDay(*day, events)
		month.Days = append(month.Days, &built)
	}
	return month, nil
}

func buildDay(day time.Time, events []dto.CalendarEventDTO) dto.CalendarDayDTO {
	key := utils.FormatDateOnly(day)
	result := dto.CalendarDayDTO{Date: key, Events: make([]dto.CalendarEventDTO, 0)}
	for _, event := range events {
		if event.Date == key {
			result.Events = append(result.Events, event)
		}
	}
	return result
}

// WeekDays - семь дней недели, содержащей reference, с понедельника.
func WeekDays(reference time.Time) []time.Time {
	offset := (int(reference.Weekday()) + 6) % 7 // понедельник = 0
	monday := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location()).
		AddDate(0, 0, -offset)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// MonthDays - дни месяца reference с nil-заполнением в начале, чтобы
// сетка начиналась с понедельника.
func MonthDays(reference time.Time) []*time.Time {
	first := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	padding := (int(first.Weekday()) + 6) % 7

	days := make([]*time.Time, 0, padding+31)
	for i := 0; i < padding; i++ {
		days = append(days, nil)
	}
	for day := first; day.Month() == reference.Month(); day = day.AddDate(0, 0, 1) {
		d := day
		days = append(days, &d)
	}
	return days
}

// PrevWeek и NextWeek сдвигают опорную дату на неделю.
func PrevWeek(reference time.Time) time.Time { return reference.AddDate(0, 0, -7) }

func NextWeek(reference time.Time) time.Time { return reference.AddDate(0, 0, 7) }

// PrevMonth и NextMonth сдвигают опорную дату на первый день соседнего
// месяца: переход от 31-го числа не должен перескакивать месяц.
func PrevMonth(reference time.Time) time.Time {
	return time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location()).AddDate(0, -1, 0)
}

func NextMonth(reference time.Time) time.Time {
	return time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location()).AddDate(0, 1, 0)
}
