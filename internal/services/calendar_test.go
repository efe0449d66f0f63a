package services

import (
	"context"
	"testing"
	"time"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	"maintenance-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func scheduledRequest(subject, rawDate string) entities.MaintenanceRequest {
	return entities.MaintenanceRequest{
		Subject:       subject,
		Type:          constants.MaintenancePreventive,
		EquipmentID:   utils.Uint64Ptr(1),
		ScheduledDate: utils.StringPtr(rawDate),
		Status:        constants.StatusNew,
	}
}

func TestCalendar_BareDateGetsDefaultSlot(t *testing.T) {
	repo := newFakeMaintenanceRepo()
	repo.add(scheduledRequest("Замена фильтров", "2024-06-01"))
	service := NewCalendarService(repo, zap.NewNop())

	events, err := service.GetEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, "2024-06-01", events[0].Date)
	assert.Equal(t, "09:00", events[0].StartTime, "голая дата получает слот по умолчанию")
	assert.Equal(t, "10:00", events[0].EndTime)
}

func TestCalendar_TimedDateGetsHourSlot(t *testing.T) {
	repo := newFakeMaintenanceRepo()
	repo.add(scheduledRequest("Калибровка", "2024-06-01T14:30:00"))
	service := NewCalendarService(repo, zap.NewNop())

	events, err := service.GetEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, "14:30", events[0].StartTime)
	assert.Equal(t, "15:30", events[0].EndTime, "событие длится час от указанного времени")
}

func TestCalendar_UnparsableDatesSilentlyDropped(t *testing.T) {
	repo := newFakeMaintenanceRepo()
	repo.add(scheduledRequest("Хорошая дата", "2024-06-01"))
	repo.add(scheduledRequest("Мусор в дате", "next tuesday"))
	repo.add(scheduledRequest("Ещё мусор", "01/06/2024"))
	service := NewCalendarService(repo, zap.NewNop())

	events, err := service.GetEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1, "нечитаемые даты выпадают молча, не ломая календарь")
	assert.Equal(t, "Хорошая дата", events[0].Title)
}

func TestCalendar_TitleAndLabelFallbacks(t *testing.T) {
	repo := newFakeMaintenanceRepo()

	withEquipment := scheduledRequest("", "2024-06-01")
	withEquipment.EquipmentName = utils.StringPtr("CNC Machine A")
	repo.add(withEquipment)

	withWorkCenter := scheduledRequest("Проверка линии", "2024-06-02")
	withWorkCenter.EquipmentID = nil
	withWorkCenter.WorkCenterID = utils.Uint64Ptr(3)
	withWorkCenter.WorkCenterName = utils.StringPtr("Machine Shop")
	repo.add(withWorkCenter)

	service := NewCalendarService(repo, zap.NewNop())
	events, err := service.GetEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Scheduled Maintenance", events[0].Title, "пустая тема заменяется заголовком по умолчанию")
	assert.Equal(t, "CNC Machine A", events[0].EquipmentLabel)
	assert.Equal(t, "Machine Shop", events[1].EquipmentLabel, "без оборудования подпись берётся с рабочего центра")
}

func TestWeekDays_StartsOnMonday(t *testing.T) {
	// 5 июня 2024 - среда.
	reference := time.Date(2024, time.June, 5, 15, 30, 0, 0, time.Local)

	days := WeekDays(reference)
	require.Len(t, days, 7)

	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, "2024-06-03", utils.FormatDateOnly(days[0]))
	assert.Equal(t, "2024-06-09", utils.FormatDateOnly(days[6]))

	// Понедельник остаётся первым днём собственной недели.
	monday := WeekDays(days[0])
	assert.Equal(t, days[0], monday[0])
}

func TestMonthDays_PadsToMonday(t *testing.T) {
	// Июнь 2024 начинается с субботы: пять пустых ячеек перед ней.
	reference := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)

	days := MonthDays(reference)
	require.Len(t, days, 35)

	for i := 0; i < 5; i++ {
		assert.Nil(t, days[i], "ячейка %d до первого числа должна быть пустой", i)
	}
	require.NotNil(t, days[5])
	assert.Equal(t, 1, days[5].Day())
	require.NotNil(t, days[34])
	assert.Equal(t, 30, days[34].Day())
}

func TestMonthDays_NoPaddingWhenMonthStartsOnMonday(t *testing.T) {
	// Июль 2024 начинается с понедельника.
	reference := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.Local)

	days := MonthDays(reference)
	require.Len(t, days, 31)
	require.NotNil(t, days[0])
	assert.Equal(t, 1, days[0].Day())
}

func TestCalendarNavigation(t *testing.T) {
	reference := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "2024-03-24", utils.FormatDateOnly(PrevWeek(reference)))
	assert.Equal(t, "2024-04-07", utils.FormatDateOnly(NextWeek(reference)))

	// С 31 марта навигация по месяцам не перескакивает через месяц.
	assert.Equal(t, time.February, PrevMonth(reference).Month())
	assert.Equal(t, time.April, NextMonth(reference).Month())
}

func TestGetWeek_GroupsEventsByDay(t *testing.T) {
	repo := newFakeMaintenanceRepo()
	repo.add(scheduledRequest("В среду", "2024-06-05"))
	repo.add(scheduledRequest("Тоже в среду", "2024-06-05T11:00:00"))
	repo.add(scheduledRequest("В другой неделе", "2024-06-12"))
	service := NewCalendarService(repo, zap.NewNop())

	week, err := service.GetWeek(context.Background(), time.Date(2024, time.June, 5, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.Len(t, week.Days, 7)

	wednesday := week.Days[2]
	assert.Equal(t, "2024-06-05", wednesday.Date)
	assert.Len(t, wednesday.Events, 2)
	assert.Empty(t, week.Days[3].Events)
}
