package services

import (
	"context"
	"errors"
	"fmt"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type WorkCenterServiceInterface interface {
	GetWorkCenters(ctx context.Context) ([]dto.WorkCenterDTO, error)
	FindWorkCenter(ctx context.Context, id uint64) (*dto.WorkCenterDTO, error)
	CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*dto.WorkCenterDTO, error)
	GetAlternatives(ctx context.Context, id uint64) ([]dto.WorkCenterDTO, error)
	AddAlternative(ctx context.Context, id uint64, payload dto.AddAlternativeDTO) error
}

type WorkCenterService struct {
	workCenterRepo repositories.WorkCenterRepositoryInterface
	logger         *zap.Logger
}

func NewWorkCenterService(workCenterRepo repositories.WorkCenterRepositoryInterface, logger *zap.Logger) WorkCenterServiceInterface {
	return &WorkCenterService{workCenterRepo: workCenterRepo, logger: logger}
}

func (s *WorkCenterService) GetWorkCenters(ctx context.Context) ([]dto.WorkCenterDTO, error) {
	workCenters, err := s.workCenterRepo.GetWorkCenters(ctx)
	if err != nil {
		s.logger.Error("не удалось получить рабочие центры", zap.Error(err))
		return nil, err
	}
	return mapWorkCentersToDTO(workCenters), nil
}

func (s *WorkCenterService) FindWorkCenter(ctx context.Context, id uint64) (*dto.WorkCenterDTO, error) {
	workCenter, err := s.workCenterRepo.FindWorkCenter(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("рабочий центр с id=%d не найден", id))
		}
		return nil, err
	}
	result := mapWorkCenterToDTO(workCenter)
	return &result, nil
}

// CreateWorkCenter проверяет числовую конфигурацию целиком и возвращает
// все нарушения разом, а не первое попавшееся.
func (s *WorkCenterService) CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*dto.WorkCenterDTO, error) {
	issues := make([]string, 0)

	if payload.Name == "" {
		issues = append(issues, "название рабочего центра обязательно")
	}
	if payload.CostPerHour < 0 {
		issues = append(issues, "стоимость часа не может быть отрицательной")
	}
	if payload.CapacityPerHour < 0 {
		issues = append(issues, "производительность в час не может быть отрицательной")
	}
	if payload.TimeEfficiencyPct < 0 || payload.TimeEfficiencyPct > 100 {
		issues = append(issues, "эффективность по времени должна быть в диапазоне от 0 до 100")
	}
	if payload.OeeTargetPct < 0 || payload.OeeTargetPct > 100 {
		issues = append(issues, "целевой OEE должен быть в диапазоне от 0 до 100")
	}

	if len(issues) > 0 {
		return nil, apperrors.NewValidationError(issues...)
	}

	status := payload.Status
	if status == "" {
		status = constants.WorkCenterActive
	}

	created, err := s.workCenterRepo.CreateWorkCenter(ctx, entities.WorkCenter{
		Name:              payload.Name,
		Code:              payload.Code.Ptr(),
		Tag:               payload.Tag.Ptr(),
		CostPerHour:       payload.CostPerHour,
		CapacityPerHour:   payload.CapacityPerHour,
		TimeEfficiencyPct: payload.TimeEfficiencyPct,
		OeeTargetPct:      payload.OeeTargetPct,
		Status:            status,
	})
	if err != nil {
		s.logger.Error("не удалось создать рабочий центр", zap.Error(err))
		return nil, err
	}

	s.logger.Info("создан рабочий центр", zap.Uint64("work_center_id", created.ID), zap.String("name", created.Name))

	result := mapWorkCenterToDTO(created)
	return &result, nil
}

func (s *WorkCenterService) GetAlternatives(ctx context.Context, id uint64) ([]dto.WorkCenterDTO, error) {
	exists, err := s.workCenterRepo.WorkCenterExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("рабочий центр с id=%d не найден", id))
	}

	alternatives, err := s.workCenterRepo.GetAlternatives(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapWorkCentersToDTO(alternatives), nil
}

// AddAlternative создаёт направленное ребро: связь хранится так, как её
// завели, зеркальная запись не создаётся автоматически.
func (s *WorkCenterService) AddAlternative(ctx context.Context, id uint64, payload dto.AddAlternativeDTO) error {
	if id == payload.AlternativeWorkCenterID {
		return apperrors.NewValidationError("рабочий центр не может быть альтернативой самому себе")
	}

	for _, workCenterID := range []uint64{id, payload.AlternativeWorkCenterID} {
		exists, err := s.workCenterRepo.WorkCenterExists(ctx, workCenterID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFoundError(fmt.Sprintf("рабочий центр с id=%d не найден", workCenterID))
		}
	}

	if err := s.workCenterRepo.AddAlternative(ctx, id, payload.AlternativeWorkCenterID); err != nil {
		return err
	}

	s.logger.Info("добавлен альтернативный рабочий центр",
		zap.Uint64("work_center_id", id),
		zap.Uint64("alternative_id", payload.AlternativeWorkCenterID))
	return nil
}

func mapWorkCenterToDTO(wc *entities.WorkCenter) dto.WorkCenterDTO {
	result := dto.WorkCenterDTO{
		ID:                wc.ID,
		Name:              wc.Name,
		Code:              null.StringFromPtr(wc.Code),
		Tag:               null.StringFromPtr(wc.Tag),
		CostPerHour:       wc.CostPerHour,
		CapacityPerHour:   wc.CapacityPerHour,
		TimeEfficiencyPct: wc.TimeEfficiencyPct,
		OeeTargetPct:      wc.OeeTargetPct,
		Status:            wc.Status,
	}
	if wc.CreatedAt != nil {
		result.CreatedAt = wc.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return result
}

func mapWorkCentersToDTO(workCenters []entities.WorkCenter) []dto.WorkCenterDTO {
	list := make([]dto.WorkCenterDTO, 0, len(workCenters))
	for i := range workCenters {
		list = append(list, mapWorkCenterToDTO(&workCenters[i]))
	}
	return list
}
