package services

import (
	"context"
	"math"
	"strings"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	"maintenance-system/pkg/types"

	"go.uber.org/zap"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
	SearchRequests(ctx context.Context, search string) ([]dto.MaintenanceRequestDTO, error)
}

type DashboardService struct {
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	logger          *zap.Logger
}

func NewDashboardService(maintenanceRepo repositories.MaintenanceRepositoryInterface, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{maintenanceRepo: maintenanceRepo, logger: logger}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	requests, err := s.maintenanceRepo.GetRequests(ctx, types.Filter{})
	if err != nil {
		s.logger.Error("не удалось собрать сводку", zap.Error(err))
		return nil, err
	}

	open := 0
	assigned := 0
	equipmentSeen := make(map[uint64]struct{})

	for i := range requests {
		request := &requests[i]
		if constants.IsFinalStatus(request.Status) {
			continue
		}
		open++
		if request.HasAssignee() {
			assigned++
		}
		// Рабочие центры в счётчик оборудования не попадают.
		if request.EquipmentID != nil {
			equipmentSeen[*request.EquipmentID] = struct{}{}
		}
	}

	loadPct := 0
	if open > 0 {
		loadPct = int(math.Round(100 * float64(assigned) / float64(open)))
	}

	return &dto.DashboardStatsDTO{
		OpenRequests:           open,
		CriticalEquipmentCount: len(equipmentSeen),
		TechnicianLoadPct:      loadPct,
	}, nil
}

// SearchRequests - поиск подстроки без учёта регистра по склейке видимых
// полей заявки. Пустой запрос возвращает весь список.
func (s *DashboardService) SearchRequests(ctx context.Context, search string) ([]dto.MaintenanceRequestDTO, error) {
	requests, err := s.maintenanceRepo.GetRequests(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))

	list := make([]dto.MaintenanceRequestDTO, 0, len(requests))
	for i := range requests {
		if needle != "" && !strings.Contains(searchHaystack(&requests[i]), needle) {
			continue
		}
		list = append(list, mapRequestToDTO(&requests[i]))
	}
	return list, nil
}

func searchHaystack(m *entities.MaintenanceRequest) string {
	parts := []string{m.Subject}
	for _, field := range []*string{
		m.EquipmentName, m.WorkCenterName, m.Department,
		m.AssignedToName, m.CreatedByName,
	} {
		if field != nil {
			parts = append(parts, *field)
		}
	}
	parts = append(parts, m.Type, m.Status)
	return strings.ToLower(strings.Join(parts, " "))
}
