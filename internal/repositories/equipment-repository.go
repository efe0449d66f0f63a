package repositories

import (
	"context"
	"errors"
	"fmt"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	equipmentTable          = "equipment"
	equipmentFieldsForJoin  = "e.id, e.name, e.category, e.department, e.location, e.serial_number, e.maintenance_team_id, e.work_center_id, e.created_at"
	equipmentTeamNameColumn = "t.name AS team_name"
)

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func (r *EquipmentRepository) scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Category,
		&e.Department,
		&e.Location,
		&e.SerialNumber,
		&e.MaintenanceTeamID,
		&e.WorkCenterID,
		&e.CreatedAt,
		&e.TeamName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s e
			LEFT JOIN teams t ON e.maintenance_team_id = t.id
		ORDER BY e.id`,
		equipmentFieldsForJoin, equipmentTeamNameColumn, equipmentTable,
	)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := r.scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s e
			LEFT JOIN teams t ON e.maintenance_team_id = t.id
		WHERE e.id = $1`,
		equipmentFieldsForJoin, equipmentTeamNameColumn, equipmentTable,
	)
	return r.scanEquipment(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, category, department, location, serial_number, maintenance_team_id, work_center_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`, equipmentTable)

	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		equipment.Name,
		equipment.Category,
		equipment.Department,
		equipment.Location,
		equipment.SerialNumber,
		equipment.MaintenanceTeamID,
		equipment.WorkCenterID,
	).Scan(&newID)
	if err != nil {
		return nil, err
	}

	return r.FindEquipment(ctx, newID)
}
