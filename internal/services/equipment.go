package services

import (
	"context"
	"errors"
	"fmt"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
}

type EquipmentService struct {
	equipmentRepo  repositories.EquipmentRepositoryInterface
	teamRepo       repositories.TeamRepositoryInterface
	workCenterRepo repositories.WorkCenterRepositoryInterface
	logger         *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	workCenterRepo repositories.WorkCenterRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo:  equipmentRepo,
		teamRepo:       teamRepo,
		workCenterRepo: workCenterRepo,
		logger:         logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error) {
	equipments, err := s.equipmentRepo.GetEquipments(ctx)
	if err != nil {
		s.logger.Error("не удалось получить список оборудования", zap.Error(err))
		return nil, err
	}

	list := make([]dto.EquipmentDTO, 0, len(equipments))
	for i := range equipments {
		list = append(list, mapEquipmentToDTO(&equipments[i]))
	}
	return list, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("оборудование с id=%d не найдено", id))
		}
		return nil, err
	}
	result := mapEquipmentToDTO(equipment)
	return &result, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	if teamID := payload.MaintenanceTeamID.Ptr(); teamID != nil {
		if _, err := s.teamRepo.FindTeam(ctx, *teamID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError(fmt.Sprintf("команда с id=%d не найдена", *teamID))
			}
			return nil, err
		}
	}
	if workCenterID := payload.WorkCenterID.Ptr(); workCenterID != nil {
		exists, err := s.workCenterRepo.WorkCenterExists(ctx, *workCenterID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("рабочий центр с id=%d не найден", *workCenterID))
		}
	}

	created, err := s.equipmentRepo.CreateEquipment(ctx, entities.Equipment{
		Name:              payload.Name,
		Category:          payload.Category.Ptr(),
		Department:        payload.Department.Ptr(),
		Location:          payload.Location.Ptr(),
		SerialNumber:      payload.SerialNumber.Ptr(),
		MaintenanceTeamID: payload.MaintenanceTeamID.Ptr(),
		WorkCenterID:      payload.WorkCenterID.Ptr(),
	})
	if err != nil {
		s.logger.Error("не удалось создать оборудование", zap.Error(err))
		return nil, err
	}

	s.logger.Info("создано оборудование", zap.Uint64("equipment_id", created.ID), zap.String("name", created.Name))

	result := mapEquipmentToDTO(created)
	return &result, nil
}

func mapEquipmentToDTO(e *entities.Equipment) dto.EquipmentDTO {
	result := dto.EquipmentDTO{
		ID:                e.ID,
		Name:              e.Name,
		Category:          null.StringFromPtr(e.Category),
		Department:        null.StringFromPtr(e.Department),
		Location:          null.StringFromPtr(e.Location),
		SerialNumber:      null.StringFromPtr(e.SerialNumber),
		MaintenanceTeamID: null.Uint64FromPtr(e.MaintenanceTeamID),
		WorkCenterID:      null.Uint64FromPtr(e.WorkCenterID),
		TeamName:          null.StringFromPtr(e.TeamName),
	}
	if e.CreatedAt != nil {
		result.CreatedAt = e.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return result
}
