package services

import (
	"math"
	"testing"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestInStatus(status string, assignee *uint64) *entities.MaintenanceRequest {
	return &entities.MaintenanceRequest{
		ID:               1,
		Subject:          "Протечка масла",
		Type:             constants.MaintenanceCorrective,
		Status:           status,
		AssignedToUserID: assignee,
	}
}

func TestCheckTransition_AllowedEdges(t *testing.T) {
	assignee := utils.Uint64Ptr(7)
	duration := utils.Float64Ptr(2.5)

	err := CheckTransition(requestInStatus(constants.StatusNew, assignee), constants.StatusInProgress, nil, 7)
	assert.NoError(t, err, "new -> in_progress руками исполнителя должен быть разрешён")

	err = CheckTransition(requestInStatus(constants.StatusInProgress, assignee), constants.StatusRepaired, duration, 7)
	assert.NoError(t, err, "in_progress -> repaired с длительностью должен быть разрешён")

	err = CheckTransition(requestInStatus(constants.StatusNew, nil), constants.StatusScrap, nil, 7)
	assert.NoError(t, err, "new -> scrap должен быть разрешён без предусловий")

	err = CheckTransition(requestInStatus(constants.StatusInProgress, assignee), constants.StatusScrap, nil, 99)
	assert.NoError(t, err, "in_progress -> scrap не требует прав исполнителя")
}

func TestCheckTransition_InProgressRequiresAssignee(t *testing.T) {
	err := CheckTransition(requestInStatus(constants.StatusNew, nil), constants.StatusInProgress, nil, 7)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err),
		"без исполнителя взять в работу нельзя")
}

func TestCheckTransition_OnlyAssigneeMayStartWork(t *testing.T) {
	assignee := utils.Uint64Ptr(7)

	err := CheckTransition(requestInStatus(constants.StatusNew, assignee), constants.StatusInProgress, nil, 8)
	require.Error(t, err, "чужую заявку в работу взять нельзя")
	assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
}

func TestCheckTransition_RepairedRequiresPositiveDuration(t *testing.T) {
	assignee := utils.Uint64Ptr(7)

	cases := []*float64{
		nil,
		utils.Float64Ptr(0),
		utils.Float64Ptr(-1),
		utils.Float64Ptr(math.NaN()),
		utils.Float64Ptr(math.Inf(1)),
	}
	for _, duration := range cases {
		err := CheckTransition(requestInStatus(constants.StatusInProgress, assignee), constants.StatusRepaired, duration, 7)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err),
			"без конечной положительной длительности завершить ремонт нельзя")
	}
}

func TestCheckTransition_TerminalStatesHaveNoExits(t *testing.T) {
	targets := []string{
		constants.StatusNew, constants.StatusInProgress,
		constants.StatusRepaired, constants.StatusScrap,
	}

	for _, from := range constants.FinalStatuses {
		for _, to := range targets {
			err := CheckTransition(requestInStatus(from, utils.Uint64Ptr(7)), to, utils.Float64Ptr(1), 7)
			require.Error(t, err, "переход из финального статуса '%s' в '%s' должен быть запрещён", from, to)
			assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))
		}
	}
}

func TestCheckTransition_SameStateAndSkipAheadForbidden(t *testing.T) {
	err := CheckTransition(requestInStatus(constants.StatusNew, utils.Uint64Ptr(7)), constants.StatusNew, nil, 7)
	require.Error(t, err, "переход в тот же статус запрещён")
	assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))

	err = CheckTransition(requestInStatus(constants.StatusNew, utils.Uint64Ptr(7)), constants.StatusRepaired, utils.Float64Ptr(1), 7)
	require.Error(t, err, "new -> repaired мимо in_progress запрещён")
	assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))
}

func TestCheckTransition_UnknownStatus(t *testing.T) {
	err := CheckTransition(requestInStatus(constants.StatusNew, nil), "broken", nil, 7)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
