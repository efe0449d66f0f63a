package repositories

import (
	"context"
	"errors"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const workCenterTable = "work_centers"

var workCenterColumns = []string{
	"id", "name", "code", "tag",
	"cost_per_hour", "capacity_per_hour", "time_efficiency_pct", "oee_target_pct",
	"status", "created_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type WorkCenterRepositoryInterface interface {
	GetWorkCenters(ctx context.Context) ([]entities.WorkCenter, error)
	FindWorkCenter(ctx context.Context, id uint64) (*entities.WorkCenter, error)
	CreateWorkCenter(ctx context.Context, wc entities.WorkCenter) (*entities.WorkCenter, error)
	WorkCenterExists(ctx context.Context, id uint64) (bool, error)
	GetAlternatives(ctx context.Context, workCenterID uint64) ([]entities.WorkCenter, error)
	AddAlternative(ctx context.Context, workCenterID, alternativeID uint64) error
}

type workCenterRepository struct {
	storage *pgxpool.Pool
}

func NewWorkCenterRepository(storage *pgxpool.Pool) WorkCenterRepositoryInterface {
	return &workCenterRepository{storage: storage}
}

func scanWorkCenter(row pgx.Row) (*entities.WorkCenter, error) {
	var wc entities.WorkCenter
	err := row.Scan(
		&wc.ID,
		&wc.Name,
		&wc.Code,
		&wc.Tag,
		&wc.CostPerHour,
		&wc.CapacityPerHour,
		&wc.TimeEfficiencyPct,
		&wc.OeeTargetPct,
		&wc.Status,
		&wc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &wc, nil
}

func (r *workCenterRepository) queryWorkCenters(ctx context.Context, builder sq.SelectBuilder) ([]entities.WorkCenter, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.WorkCenter, 0)
	for rows.Next() {
		wc, err := scanWorkCenter(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *wc)
	}
	return list, rows.Err()
}

func (r *workCenterRepository) GetWorkCenters(ctx context.Context) ([]entities.WorkCenter, error) {
	builder := psql.Select(workCenterColumns...).From(workCenterTable).OrderBy("id")
	return r.queryWorkCenters(ctx, builder)
}

func (r *workCenterRepository) FindWorkCenter(ctx context.Context, id uint64) (*entities.WorkCenter, error) {
	query, args, err := psql.Select(workCenterColumns...).
		From(workCenterTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanWorkCenter(r.storage.QueryRow(ctx, query, args...))
}

func (r *workCenterRepository) CreateWorkCenter(ctx context.Context, wc entities.WorkCenter) (*entities.WorkCenter, error) {
	query, args, err := psql.Insert(workCenterTable).
		Columns("name", "code", "tag", "cost_per_hour", "capacity_per_hour", "time_efficiency_pct", "oee_target_pct", "status").
		Values(wc.Name, wc.Code, wc.Tag, wc.CostPerHour, wc.CapacityPerHour, wc.TimeEfficiencyPct, wc.OeeTargetPct, wc.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return nil, err
	}
	return r.FindWorkCenter(ctx, newID)
}

func (r *workCenterRepository) WorkCenterExists(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM work_centers WHERE id = $1)", id,
	).Scan(&exists)
	return exists, err
}

// GetAlternatives возвращает альтернативы в том направлении, в котором
// они были созданы: связь не зеркалится.
func (r *workCenterRepository) GetAlternatives(ctx context.Context, workCenterID uint64) ([]entities.WorkCenter, error) {
	cols := make([]string, 0, len(workCenterColumns))
	for _, c := range workCenterColumns {
		cols = append(cols, "wc."+c)
	}

	builder := psql.Select(cols...).
		From("work_center_alternatives a").
		Join("work_centers wc ON wc.id = a.alternative_work_center_id").
		Where(sq.Eq{"a.work_center_id": workCenterID}).
		OrderBy("wc.id")

	return r.queryWorkCenters(ctx, builder)
}

func (r *workCenterRepository) AddAlternative(ctx context.Context, workCenterID, alternativeID uint64) error {
	query, args, err := psql.Insert("work_center_alternatives").
		Columns("work_center_id", "alternative_work_center_id").
		Values(workCenterID, alternativeID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23503 - нарушение внешнего ключа: одного из центров нет
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}
