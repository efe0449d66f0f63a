package constants

// --- СТАТУСЫ ЗАЯВОК НА ОБСЛУЖИВАНИЕ (значения совпадают с кодами в БД и на фронте) ---
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusRepaired   = "repaired"
	StatusScrap      = "scrap"
)

// Финальные статусы: из них нет ни одного перехода.
var FinalStatuses = []string{
	StatusRepaired,
	StatusScrap,
}

func IsFinalStatus(code string) bool {
	for _, s := range FinalStatuses {
		if s == code {
			return true
		}
	}
	return false
}

// StatusRank - позиция статуса на шкале прогресса для таймлайна:
// new(0) < in_progress(1) < repaired(2). 'scrap' - боковая ветка,
// на шкале не находится, для него возвращается -1.
func StatusRank(code string) int {
	switch code {
	case StatusNew:
		return 0
	case StatusInProgress:
		return 1
	case StatusRepaired:
		return 2
	default:
		return -1
	}
}

// --- ТИПЫ ОБСЛУЖИВАНИЯ ---
const (
	MaintenanceCorrective = "corrective"
	MaintenancePreventive = "preventive"
)

func IsKnownMaintenanceType(t string) bool {
	return t == MaintenanceCorrective || t == MaintenancePreventive
}

// --- СТАТУСЫ РАБОЧИХ ЦЕНТРОВ ---
const (
	WorkCenterActive   = "active"
	WorkCenterInactive = "inactive"
)
