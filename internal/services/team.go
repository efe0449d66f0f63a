package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"

	"go.uber.org/zap"
)

const teamsPicklistCacheKey = "picklist:teams"

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error)
}

type TeamService struct {
	teamRepo    repositories.TeamRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	picklistTTL time.Duration
	logger      *zap.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	picklistTTL time.Duration,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{
		teamRepo:    teamRepo,
		cacheRepo:   cacheRepo,
		picklistTTL: picklistTTL,
		logger:      logger,
	}
}

// GetTeams отдаёт справочник команд через кеш: список почти не меняется,
// а дёргается каждой формой создания заявки.
func (s *TeamService) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, teamsPicklistCacheKey); err == nil && cached != "" {
		var list []dto.TeamDTO
		if err := json.Unmarshal([]byte(cached), &list); err == nil {
			return list, nil
		}
	}

	teams, err := s.teamRepo.GetTeams(ctx)
	if err != nil {
		s.logger.Error("не удалось получить список команд", zap.Error(err))
		return nil, err
	}

	list := make([]dto.TeamDTO, 0, len(teams))
	for i := range teams {
		list = append(list, mapTeamToDTO(&teams[i]))
	}

	if encoded, err := json.Marshal(list); err == nil {
		if err := s.cacheRepo.Set(ctx, teamsPicklistCacheKey, string(encoded), s.picklistTTL); err != nil {
			s.logger.Warn("не удалось закешировать справочник команд", zap.Error(err))
		}
	}

	return list, nil
}

func (s *TeamService) FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	team, err := s.teamRepo.FindTeam(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("команда с id=%d не найдена", id))
		}
		return nil, err
	}
	result := mapTeamToDTO(team)
	return &result, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	created, err := s.teamRepo.CreateTeam(ctx, entities.Team{
		Name:    payload.Name,
		Members: payload.Members,
	})
	if err != nil {
		s.logger.Error("не удалось создать команду", zap.Error(err))
		return nil, err
	}

	// Справочник устарел.
	if err := s.cacheRepo.Del(ctx, teamsPicklistCacheKey); err != nil {
		s.logger.Warn("не удалось сбросить кеш справочника команд", zap.Error(err))
	}

	s.logger.Info("создана команда", zap.Uint64("team_id", created.ID), zap.String("name", created.Name))

	result := mapTeamToDTO(created)
	return &result, nil
}

func mapTeamToDTO(t *entities.Team) dto.TeamDTO {
	result := dto.TeamDTO{ID: t.ID, Name: t.Name, Members: t.Members}
	if t.CreatedAt != nil {
		result.CreatedAt = t.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return result
}
