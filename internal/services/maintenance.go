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
	"maintenance-system/pkg/types"
	"maintenance-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type MaintenanceServiceInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]dto.MaintenanceRequestDTO, error)
	FindRequest(ctx context.Context, id uint64) (*dto.MaintenanceRequestDTO, error)
	CreateRequest(ctx context.Context, payload dto.CreateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error)
	AssignRequest(ctx context.Context, id uint64, payload dto.AssignMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error)
	UpdateStatus(ctx context.Context, id uint64, payload dto.UpdateMaintenanceStatusDTO) (*dto.MaintenanceRequestDTO, error)
}

type MaintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	equipmentRepo   repositories.EquipmentRepositoryInterface
	workCenterRepo  repositories.WorkCenterRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	logger          *zap.Logger
}

func NewMaintenanceService(
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	workCenterRepo repositories.WorkCenterRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) MaintenanceServiceInterface {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		equipmentRepo:   equipmentRepo,
		workCenterRepo:  workCenterRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

func (s *MaintenanceService) GetRequests(ctx context.Context, filter types.Filter) ([]dto.MaintenanceRequestDTO, error) {
	requests, err := s.maintenanceRepo.GetRequests(ctx, filter)
	if err != nil {
		s.logger.Error("не удалось получить список заявок", zap.Error(err))
		return nil, err
	}

	list := make([]dto.MaintenanceRequestDTO, 0, len(requests))
	for i := range requests {
		list = append(list, mapRequestToDTO(&requests[i]))
	}
	return list, nil
}

func (s *MaintenanceService) FindRequest(ctx context.Context, id uint64) (*dto.MaintenanceRequestDTO, error) {
	request, err := s.maintenanceRepo.FindRequest(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("заявка с id=%d не найдена", id))
		}
		return nil, err
	}
	result := mapRequestToDTO(request)
	return &result, nil
}

// CreateRequest создаёт заявку в статусе "new". Ошибки формы собираются
// в один ValidationError, а не возвращаются по одной.
func (s *MaintenanceService) CreateRequest(ctx context.Context, payload dto.CreateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	issues := make([]string, 0)

	if payload.Subject == "" {
		issues = append(issues, "тема заявки обязательна")
	}
	if !constants.IsKnownMaintenanceType(payload.Type) {
		issues = append(issues, fmt.Sprintf("неизвестный вид обслуживания: '%s'", payload.Type))
	}
	if payload.Type == constants.MaintenancePreventive && !payload.ScheduledDate.Valid {
		issues = append(issues, "для планового обслуживания требуется запланированная дата")
	}

	target, targetErr := entities.NewTarget(payload.EquipmentID.Ptr(), payload.WorkCenterID.Ptr())
	if targetErr != nil {
		issues = append(issues, targetErr.Error())
	}

	if len(issues) > 0 {
		return nil, apperrors.NewValidationError(issues...)
	}

	request := entities.MaintenanceRequest{
		Subject:         payload.Subject,
		Type:            payload.Type,
		EquipmentID:     target.EquipmentID(),
		WorkCenterID:    target.WorkCenterID(),
		TeamID:          payload.TeamID.Ptr(),
		ScheduledDate:   payload.ScheduledDate.Ptr(),
		Status:          constants.StatusNew,
		CreatedByUserID: userID,
	}

	switch target.Kind() {
	case entities.TargetEquipment:
		equipment, err := s.equipmentRepo.FindEquipment(ctx, *target.EquipmentID())
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError(fmt.Sprintf("оборудование с id=%d не найдено", *target.EquipmentID()))
			}
			return nil, err
		}
		// Снимок: категория и команда фиксируются на момент создания.
		request.Category = equipment.Category
		if request.TeamID == nil {
			request.TeamID = equipment.MaintenanceTeamID
		}
	case entities.TargetWorkCenter:
		exists, err := s.workCenterRepo.WorkCenterExists(ctx, *target.WorkCenterID())
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("рабочий центр с id=%d не найден", *target.WorkCenterID()))
		}
	}

	created, err := s.maintenanceRepo.CreateRequest(ctx, request)
	if err != nil {
		s.logger.Error("не удалось сохранить заявку", zap.Error(err))
		return nil, err
	}

	s.logger.Info("создана заявка на обслуживание",
		zap.Uint64("request_id", created.ID),
		zap.String("type", created.Type),
		zap.Uint64("created_by", userID))

	result := mapRequestToDTO(created)
	return &result, nil
}

// AssignRequest назначает исполнителя. Повторное назначение разрешено и
// просто перезаписывает предыдущее, пока заявка не закрыта.
func (s *MaintenanceService) AssignRequest(ctx context.Context, id uint64, payload dto.AssignMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	request, err := s.maintenanceRepo.FindRequest(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("заявка с id=%d не найдена", id))
		}
		return nil, err
	}

	if constants.IsFinalStatus(request.Status) {
		return nil, apperrors.NewInvalidStateError(
			fmt.Sprintf("нельзя назначить исполнителя: заявка в финальном статусе '%s'", request.Status))
	}

	if _, err := s.userRepo.FindUserByID(ctx, payload.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("пользователь с id=%d не найден", payload.UserID))
		}
		return nil, err
	}

	if err := s.maintenanceRepo.UpdateAssignee(ctx, id, payload.UserID); err != nil {
		return nil, err
	}

	s.logger.Info("заявке назначен исполнитель",
		zap.Uint64("request_id", id),
		zap.Uint64("user_id", payload.UserID))

	return s.FindRequest(ctx, id)
}

func (s *MaintenanceService) UpdateStatus(ctx context.Context, id uint64, payload dto.UpdateMaintenanceStatusDTO) (*dto.MaintenanceRequestDTO, error) {
	actingUserID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	request, err := s.maintenanceRepo.FindRequest(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("заявка с id=%d не найдена", id))
		}
		return nil, err
	}

	if err := CheckTransition(request, payload.Status, payload.DurationHours.Ptr(), actingUserID); err != nil {
		return nil, err
	}

	if err := s.maintenanceRepo.UpdateStatus(ctx, id, payload.Status, payload.DurationHours.Ptr()); err != nil {
		return nil, err
	}

	s.logger.Info("статус заявки изменён",
		zap.Uint64("request_id", id),
		zap.String("from", request.Status),
		zap.String("to", payload.Status))

	return s.FindRequest(ctx, id)
}

func mapRequestToDTO(m *entities.MaintenanceRequest) dto.MaintenanceRequestDTO {
	return dto.MaintenanceRequestDTO{
		ID:      m.ID,
		Subject: m.Subject,
		Type:    m.Type,

		EquipmentID:    null.Uint64FromPtr(m.EquipmentID),
		EquipmentName:  null.StringFromPtr(m.EquipmentName),
		SerialNumber:   null.StringFromPtr(m.SerialNumber),
		Department:     null.StringFromPtr(m.Department),
		WorkCenterID:   null.Uint64FromPtr(m.WorkCenterID),
		WorkCenterName: null.StringFromPtr(m.WorkCenterName),

		TeamID:   null.Uint64FromPtr(m.TeamID),
		TeamName: null.StringFromPtr(m.TeamName),
		Category: null.StringFromPtr(m.Category),

		ScheduledDate: null.StringFromPtr(m.ScheduledDate),

		Status:           m.Status,
		StatusRank:       constants.StatusRank(m.Status),
		AssignedToUserID: null.Uint64FromPtr(m.AssignedToUserID),
		AssignedToName:   null.StringFromPtr(m.AssignedToName),
		DurationHours:    null.Float64FromPtr(m.DurationHours),

		CreatedByUserID: m.CreatedByUserID,
		CreatedByName:   null.StringFromPtr(m.CreatedByName),
		CreatedAt:       m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
