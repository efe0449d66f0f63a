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
	teamTable  = "teams"
	teamFields = "id, name, members, created_at"
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]entities.Team, error)
	FindTeam(ctx context.Context, id uint64) (*entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
}

type teamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &teamRepository{storage: storage}
}

func (r *teamRepository) GetTeams(ctx context.Context) ([]entities.Team, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", teamFields, teamTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Members, &t.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *teamRepository) FindTeam(ctx context.Context, id uint64) (*entities.Team, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", teamFields, teamTable)

	var t entities.Team
	err := r.storage.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Members, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, members)
		VALUES ($1, $2)
		RETURNING %s`, teamTable, teamFields)

	var t entities.Team
	err := r.storage.QueryRow(ctx, query, team.Name, team.Members).
		Scan(&t.ID, &t.Name, &t.Members, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
