package utils

import (
	"fmt"
	"strings"
	"time"
)

// Форматы, в которых фронт и старые записи присылают scheduled_date.
// Голая дата указана первой: для неё важно получить ЛОКАЛЬНУЮ полночь,
// а не полночь UTC, иначе событие уезжает на соседний день.
var scheduledDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseScheduledDate разбирает дату планирования заявки. Записи с
// нечитаемой датой вызывающая сторона отбрасывает сама.
func ParseScheduledDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("пустая дата")
	}

	for _, layout := range scheduledDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("не удалось разобрать дату '%s'", raw)
}

func FormatHHMM(t time.Time) string {
	return t.Format("15:04")
}

func FormatDateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
