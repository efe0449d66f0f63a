package services

import (
	"context"
	"testing"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	"maintenance-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetStats_EmptySet(t *testing.T) {
	service := NewDashboardService(newFakeMaintenanceRepo(), zap.NewNop())

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.OpenRequests)
	assert.Equal(t, 0, stats.CriticalEquipmentCount)
	assert.Equal(t, 0, stats.TechnicianLoadPct, "без открытых заявок нагрузка равна нулю, а не делению на ноль")
}

func TestGetStats_CountsAndLoad(t *testing.T) {
	repo := newFakeMaintenanceRepo()

	// Две открытые заявки, одна с исполнителем.
	repo.add(entities.MaintenanceRequest{
		Subject: "A", Status: constants.StatusNew,
		EquipmentID: utils.Uint64Ptr(1), AssignedToUserID: utils.Uint64Ptr(1),
	})
	repo.add(entities.MaintenanceRequest{
		Subject: "B", Status: constants.StatusInProgress,
		EquipmentID: utils.Uint64Ptr(2),
	})
	// Закрытые не считаются.
	repo.add(entities.MaintenanceRequest{
		Subject: "C", Status: constants.StatusRepaired,
		EquipmentID: utils.Uint64Ptr(3), AssignedToUserID: utils.Uint64Ptr(1),
	})
	repo.add(entities.MaintenanceRequest{
		Subject: "D", Status: constants.StatusScrap,
		EquipmentID: utils.Uint64Ptr(4),
	})

	service := NewDashboardService(repo, zap.NewNop())
	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.OpenRequests)
	assert.Equal(t, 2, stats.CriticalEquipmentCount)
	assert.Equal(t, 50, stats.TechnicianLoadPct, "2 открытые, 1 назначена — 50%")
}

func TestGetStats_DistinctEquipmentAndWorkCenterExcluded(t *testing.T) {
	repo := newFakeMaintenanceRepo()

	// Две заявки на одно и то же оборудование считаются один раз.
	repo.add(entities.MaintenanceRequest{Subject: "A", Status: constants.StatusNew, EquipmentID: utils.Uint64Ptr(1)})
	repo.add(entities.MaintenanceRequest{Subject: "B", Status: constants.StatusInProgress, EquipmentID: utils.Uint64Ptr(1)})
	// Заявка на рабочий центр в счётчик оборудования не попадает.
	repo.add(entities.MaintenanceRequest{Subject: "C", Status: constants.StatusNew, WorkCenterID: utils.Uint64Ptr(3)})

	service := NewDashboardService(repo, zap.NewNop())
	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.OpenRequests)
	assert.Equal(t, 1, stats.CriticalEquipmentCount)
}

func TestSearchRequests_SubstringOverConcatenation(t *testing.T) {
	repo := newFakeMaintenanceRepo()

	leak := entities.MaintenanceRequest{
		Subject: "Urgent: Oil leak", Type: constants.MaintenanceCorrective,
		Status: constants.StatusNew, EquipmentID: utils.Uint64Ptr(1),
	}
	leak.EquipmentName = utils.StringPtr("CNC Machine A")
	leak.AssignedToName = utils.StringPtr("John Doe")
	repo.add(leak)

	filters := entities.MaintenanceRequest{
		Subject: "Replace filters", Type: constants.MaintenancePreventive,
		Status: constants.StatusNew, EquipmentID: utils.Uint64Ptr(2),
	}
	filters.Department = utils.StringPtr("Welding")
	repo.add(filters)

	service := NewDashboardService(repo, zap.NewNop())
	ctx := context.Background()

	byEquipment, err := service.SearchRequests(ctx, "cnc machine")
	require.NoError(t, err)
	require.Len(t, byEquipment, 1)
	assert.Equal(t, "Urgent: Oil leak", byEquipment[0].Subject)

	byAssignee, err := service.SearchRequests(ctx, "JOHN")
	require.NoError(t, err)
	assert.Len(t, byAssignee, 1, "поиск не зависит от регистра")

	byDepartment, err := service.SearchRequests(ctx, "welding")
	require.NoError(t, err)
	require.Len(t, byDepartment, 1)
	assert.Equal(t, "Replace filters", byDepartment[0].Subject)

	byType, err := service.SearchRequests(ctx, "preventive")
	require.NoError(t, err)
	assert.Len(t, byType, 1)

	all, err := service.SearchRequests(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2, "пустой запрос возвращает весь список")

	none, err := service.SearchRequests(ctx, "таких заявок нет")
	require.NoError(t, err)
	assert.Empty(t, none)
}
