package services

import (
	"context"
	"testing"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWorkCenterFixture() (WorkCenterServiceInterface, *fakeWorkCenterRepo) {
	repo := newFakeWorkCenterRepo()
	repo.workCenters[1] = &entities.WorkCenter{ID: 1, Name: "Machine Shop", Status: constants.WorkCenterActive}
	repo.workCenters[2] = &entities.WorkCenter{ID: 2, Name: "Welding Department", Status: constants.WorkCenterActive}
	return NewWorkCenterService(repo, zap.NewNop()), repo
}

func TestCreateWorkCenter_CollectsAllNumericViolations(t *testing.T) {
	service, _ := newWorkCenterFixture()

	_, err := service.CreateWorkCenter(context.Background(), dto.CreateWorkCenterDTO{
		Name:              "Broken",
		CostPerHour:       -10,
		CapacityPerHour:   -1,
		TimeEfficiencyPct: 120,
		OeeTargetPct:      -5,
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, apperrors.KindValidation, httpErr.Kind)

	issues, ok := httpErr.Details.([]string)
	require.True(t, ok)
	assert.Len(t, issues, 4, "все четыре числовых нарушения возвращаются разом")
}

func TestCreateWorkCenter_BoundaryValuesAccepted(t *testing.T) {
	service, _ := newWorkCenterFixture()

	created, err := service.CreateWorkCenter(context.Background(), dto.CreateWorkCenterDTO{
		Name:              "Assembly Line",
		CostPerHour:       0,
		CapacityPerHour:   0,
		TimeEfficiencyPct: 100,
		OeeTargetPct:      0,
	})
	require.NoError(t, err, "граничные значения диапазонов допустимы")
	assert.Equal(t, constants.WorkCenterActive, created.Status, "статус по умолчанию - active")
}

func TestAddAlternative_SelfLinkRejected(t *testing.T) {
	service, _ := newWorkCenterFixture()

	err := service.AddAlternative(context.Background(), 1, dto.AddAlternativeDTO{AlternativeWorkCenterID: 1})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err), "центр не может ссылаться сам на себя")
}

func TestAddAlternative_UnknownIDs(t *testing.T) {
	service, _ := newWorkCenterFixture()
	ctx := context.Background()

	err := service.AddAlternative(ctx, 99, dto.AddAlternativeDTO{AlternativeWorkCenterID: 1})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	err = service.AddAlternative(ctx, 1, dto.AddAlternativeDTO{AlternativeWorkCenterID: 99})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestAddAlternative_EdgeIsDirectional(t *testing.T) {
	service, _ := newWorkCenterFixture()
	ctx := context.Background()

	require.NoError(t, service.AddAlternative(ctx, 1, dto.AddAlternativeDTO{AlternativeWorkCenterID: 2}))

	forward, err := service.GetAlternatives(ctx, 1)
	require.NoError(t, err)
	require.Len(t, forward, 1)
	assert.Equal(t, uint64(2), forward[0].ID)

	// Обратное ребро не создаётся автоматически.
	backward, err := service.GetAlternatives(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, backward)
}
