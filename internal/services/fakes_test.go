package services

import (
	"context"
	"strconv"
	"time"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

// Фейковые репозитории в памяти. Пул Postgres в юнит-тестах не нужен:
// сервисы работают через интерфейсы.

type fakeMaintenanceRepo struct {
	requests map[uint64]*entities.MaintenanceRequest
	nextID   uint64
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{requests: make(map[uint64]*entities.MaintenanceRequest), nextID: 1}
}

func (f *fakeMaintenanceRepo) add(m entities.MaintenanceRequest) *entities.MaintenanceRequest {
	m.ID = f.nextID
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	f.nextID++
	f.requests[m.ID] = &m
	return &m
}

func (f *fakeMaintenanceRepo) GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, error) {
	list := make([]entities.MaintenanceRequest, 0, len(f.requests))
	for id := uint64(1); id < f.nextID; id++ {
		m, ok := f.requests[id]
		if !ok {
			continue
		}
		if filter.EquipmentID != nil && (m.EquipmentID == nil || *m.EquipmentID != *filter.EquipmentID) {
			continue
		}
		if filter.WorkCenterID != nil && (m.WorkCenterID == nil || *m.WorkCenterID != *filter.WorkCenterID) {
			continue
		}
		list = append(list, *m)
	}
	return list, nil
}

func (f *fakeMaintenanceRepo) GetScheduledRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	list := make([]entities.MaintenanceRequest, 0)
	for id := uint64(1); id < f.nextID; id++ {
		m, ok := f.requests[id]
		if !ok || m.ScheduledDate == nil || *m.ScheduledDate == "" {
			continue
		}
		list = append(list, *m)
	}
	return list, nil
}

func (f *fakeMaintenanceRepo) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	m, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *m
	return &clone, nil
}

func (f *fakeMaintenanceRepo) CreateRequest(ctx context.Context, request entities.MaintenanceRequest) (*entities.MaintenanceRequest, error) {
	return f.add(request), nil
}

func (f *fakeMaintenanceRepo) UpdateAssignee(ctx context.Context, id uint64, userID uint64) error {
	m, ok := f.requests[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.AssignedToUserID = &userID
	return nil
}

func (f *fakeMaintenanceRepo) UpdateStatus(ctx context.Context, id uint64, status string, durationHours *float64) error {
	m, ok := f.requests[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.Status = status
	if durationHours != nil {
		m.DurationHours = durationHours
	}
	return nil
}

type fakeEquipmentRepo struct {
	equipments map[uint64]*entities.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{equipments: make(map[uint64]*entities.Equipment)}
}

func (f *fakeEquipmentRepo) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	list := make([]entities.Equipment, 0, len(f.equipments))
	for _, e := range f.equipments {
		list = append(list, *e)
	}
	return list, nil
}

func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	e, ok := f.equipments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *e
	return &clone, nil
}

func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	equipment.ID = uint64(len(f.equipments) + 1)
	f.equipments[equipment.ID] = &equipment
	return &equipment, nil
}

type fakeWorkCenterRepo struct {
	workCenters  map[uint64]*entities.WorkCenter
	alternatives map[uint64][]uint64
}

func newFakeWorkCenterRepo() *fakeWorkCenterRepo {
	return &fakeWorkCenterRepo{
		workCenters:  make(map[uint64]*entities.WorkCenter),
		alternatives: make(map[uint64][]uint64),
	}
}

func (f *fakeWorkCenterRepo) GetWorkCenters(ctx context.Context) ([]entities.WorkCenter, error) {
	list := make([]entities.WorkCenter, 0, len(f.workCenters))
	for _, wc := range f.workCenters {
		list = append(list, *wc)
	}
	return list, nil
}

func (f *fakeWorkCenterRepo) FindWorkCenter(ctx context.Context, id uint64) (*entities.WorkCenter, error) {
	wc, ok := f.workCenters[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *wc
	return &clone, nil
}

func (f *fakeWorkCenterRepo) CreateWorkCenter(ctx context.Context, wc entities.WorkCenter) (*entities.WorkCenter, error) {
	wc.ID = uint64(len(f.workCenters) + 1)
	f.workCenters[wc.ID] = &wc
	return &wc, nil
}

func (f *fakeWorkCenterRepo) WorkCenterExists(ctx context.Context, id uint64) (bool, error) {
	_, ok := f.workCenters[id]
	return ok, nil
}

func (f *fakeWorkCenterRepo) GetAlternatives(ctx context.Context, workCenterID uint64) ([]entities.WorkCenter, error) {
	list := make([]entities.WorkCenter, 0)
	for _, id := range f.alternatives[workCenterID] {
		if wc, ok := f.workCenters[id]; ok {
			list = append(list, *wc)
		}
	}
	return list, nil
}

func (f *fakeWorkCenterRepo) AddAlternative(ctx context.Context, workCenterID, alternativeID uint64) error {
	for _, existing := range f.alternatives[workCenterID] {
		if existing == alternativeID {
			return nil
		}
	}
	f.alternatives[workCenterID] = append(f.alternatives[workCenterID], alternativeID)
	return nil
}

type fakeUserRepo struct {
	users map[uint64]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*entities.User)}
}

func (f *fakeUserRepo) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, apperrors.NewConflictError("пользователь с такой почтой уже зарегистрирован")
		}
	}
	user.ID = uint64(len(f.users) + 1)
	f.users[user.ID] = &user
	return &user, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, userID uint64, hashedPassword string) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.Password = hashedPassword
	return nil
}

type fakeTeamRepo struct {
	teams map[uint64]*entities.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[uint64]*entities.Team)}
}

func (f *fakeTeamRepo) GetTeams(ctx context.Context) ([]entities.Team, error) {
	list := make([]entities.Team, 0, len(f.teams))
	for _, t := range f.teams {
		list = append(list, *t)
	}
	return list, nil
}

func (f *fakeTeamRepo) FindTeam(ctx context.Context, id uint64) (*entities.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTeamRepo) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	team.ID = uint64(len(f.teams) + 1)
	f.teams[team.ID] = &team
	return &team, nil
}

type fakeCacheRepo struct {
	values map[string]string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: make(map[string]string)}
}

func (f *fakeCacheRepo) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if s, ok := value.(string); ok {
		f.values[key] = s
	}
	return nil
}

func (f *fakeCacheRepo) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeCacheRepo) Incr(ctx context.Context, key string) (int64, error) {
	current, _ := strconv.ParseInt(f.values[key], 10, 64)
	current++
	f.values[key] = strconv.FormatInt(current, 10)
	return current, nil
}

func (f *fakeCacheRepo) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	_, ok := f.values[key]
	return ok, nil
}
