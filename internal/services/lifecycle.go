package services

import (
	"math"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
)

// transitionRule описывает одно разрешённое ребро жизненного цикла заявки.
// Всё, чего нет в таблице, запрещено.
type transitionRule struct {
	// Переход доступен только назначенному исполнителю.
	assigneeOnly     bool
	requiresDuration bool
}

type transitionKey struct {
	from string
	to   string
}

var allowedTransitions = map[transitionKey]transitionRule{
	{constants.StatusNew, constants.StatusInProgress}:      {assigneeOnly: true},
	{constants.StatusInProgress, constants.StatusRepaired}: {requiresDuration: true},
	{constants.StatusNew, constants.StatusScrap}:           {},
	{constants.StatusInProgress, constants.StatusScrap}:    {},
}

// CheckTransition проверяет допустимость перехода и его предусловия.
// Финальные статусы не имеют исходящих рёбер, поэтому любой переход из
// них отклоняется самой таблицей.
func CheckTransition(request *entities.MaintenanceRequest, newStatus string, durationHours *float64, actingUserID uint64) error {
	if !isKnownStatus(newStatus) {
		return apperrors.NewValidationError("неизвестный статус: '" + newStatus + "'")
	}

	rule, ok := allowedTransitions[transitionKey{from: request.Status, to: newStatus}]
	if !ok {
		return apperrors.NewInvalidTransitionError(request.Status, newStatus)
	}

	if rule.assigneeOnly {
		if !request.HasAssignee() {
			return apperrors.NewInvalidStateError("нельзя взять заявку в работу без назначенного исполнителя")
		}
		if *request.AssignedToUserID != actingUserID {
			return apperrors.NewInvalidStateError("взять заявку в работу может только назначенный исполнитель")
		}
	}
	if rule.requiresDuration && !isPositiveFinite(durationHours) {
		return apperrors.NewValidationError("для завершения ремонта требуется положительная длительность работ в часах")
	}

	return nil
}

func isPositiveFinite(value *float64) bool {
	return value != nil && *value > 0 && !math.IsInf(*value, 0) && !math.IsNaN(*value)
}

func isKnownStatus(status string) bool {
	switch status {
	case constants.StatusNew, constants.StatusInProgress, constants.StatusRepaired, constants.StatusScrap:
		return true
	}
	return false
}
