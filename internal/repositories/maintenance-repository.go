package repositories

import (
	"context"
	"errors"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const maintenanceTable = "maintenance_requests"

var maintenanceSelectColumns = []string{
	"m.id", "m.subject", "m.type",
	"m.equipment_id", "m.work_center_id", "m.team_id", "m.category",
	"m.scheduled_date", "m.status", "m.assigned_to_user_id", "m.duration_hours",
	"m.created_by_user_id", "m.created_at",
	"e.name AS equipment_name", "e.serial_number", "e.department",
	"wc.name AS work_center_name",
	"t.name AS team_name",
	"au.name AS assigned_to_name",
	"cu.name AS created_by_name",
}

type MaintenanceRepositoryInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, error)
	GetScheduledRequests(ctx context.Context) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, request entities.MaintenanceRequest) (*entities.MaintenanceRequest, error)
	UpdateAssignee(ctx context.Context, id uint64, userID uint64) error
	UpdateStatus(ctx context.Context, id uint64, status string, durationHours *float64) error
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaintenanceRepository(storage *pgxpool.Pool, logger *zap.Logger) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage, logger: logger}
}

func (r *MaintenanceRepository) baseSelect() sq.SelectBuilder {
	return psql.Select(maintenanceSelectColumns...).
		From(maintenanceTable + " m").
		LeftJoin("equipment e ON e.id = m.equipment_id").
		LeftJoin("work_centers wc ON wc.id = m.work_center_id").
		LeftJoin("teams t ON t.id = m.team_id").
		LeftJoin("users au ON au.id = m.assigned_to_user_id").
		LeftJoin("users cu ON cu.id = m.created_by_user_id")
}

func scanMaintenanceRequest(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var m entities.MaintenanceRequest
	err := row.Scan(
		&m.ID,
		&m.Subject,
		&m.Type,
		&m.EquipmentID,
		&m.WorkCenterID,
		&m.TeamID,
		&m.Category,
		&m.ScheduledDate,
		&m.Status,
		&m.AssignedToUserID,
		&m.DurationHours,
		&m.CreatedByUserID,
		&m.CreatedAt,
		&m.EquipmentName,
		&m.SerialNumber,
		&m.Department,
		&m.WorkCenterName,
		&m.TeamName,
		&m.AssignedToName,
		&m.CreatedByName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MaintenanceRepository) queryRequests(ctx context.Context, builder sq.SelectBuilder) ([]entities.MaintenanceRequest, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		m, err := scanMaintenanceRequest(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}

func (r *MaintenanceRepository) GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, error) {
	builder := r.baseSelect().OrderBy("m.created_at DESC", "m.id DESC")

	if filter.EquipmentID != nil {
		builder = builder.Where(sq.Eq{"m.equipment_id": *filter.EquipmentID})
	}
	if filter.WorkCenterID != nil {
		builder = builder.Where(sq.Eq{"m.work_center_id": *filter.WorkCenterID})
	}

	return r.queryRequests(ctx, builder)
}

// GetScheduledRequests - выборка для календаря: только заявки, у которых
// вообще заполнена дата. Читаемость даты проверяет уже проекция.
func (r *MaintenanceRepository) GetScheduledRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	builder := r.baseSelect().
		Where("m.scheduled_date IS NOT NULL AND m.scheduled_date <> ''").
		OrderBy("m.scheduled_date")
	return r.queryRequests(ctx, builder)
}

func (r *MaintenanceRepository) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	query, args, err := r.baseSelect().Where(sq.Eq{"m.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanMaintenanceRequest(r.storage.QueryRow(ctx, query, args...))
}

func (r *MaintenanceRepository) CreateRequest(ctx context.Context, request entities.MaintenanceRequest) (*entities.MaintenanceRequest, error) {
	query, args, err := psql.Insert(maintenanceTable).
		Columns("subject", "type", "equipment_id", "work_center_id", "team_id", "category", "scheduled_date", "status", "created_by_user_id").
		Values(
			request.Subject,
			request.Type,
			request.EquipmentID,
			request.WorkCenterID,
			request.TeamID,
			request.Category,
			request.ScheduledDate,
			request.Status,
			request.CreatedByUserID,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		r.logger.Error("не удалось создать заявку", zap.Error(err))
		return nil, err
	}

	return r.FindRequest(ctx, newID)
}

func (r *MaintenanceRepository) UpdateAssignee(ctx context.Context, id uint64, userID uint64) error {
	cmd, err := r.storage.Exec(ctx,
		"UPDATE maintenance_requests SET assigned_to_user_id = $1 WHERE id = $2",
		userID, id,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, id uint64, status string, durationHours *float64) error {
	cmd, err := r.storage.Exec(ctx,
		"UPDATE maintenance_requests SET status = $1, duration_hours = COALESCE($2, duration_hours) WHERE id = $3",
		status, durationHours, id,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
