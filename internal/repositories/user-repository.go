package repositories

import (
	"context"
	"errors"
	"fmt"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	userTable  = "users"
	userFields = "id, name, email, password, created_at"
)

type UserRepositoryInterface interface {
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdatePassword(ctx context.Context, userID uint64, hashedPassword string) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func (r *UserRepository) scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", userFields, userTable)
	return r.scanUser(r.storage.QueryRow(ctx, query, id))
}

// FindUserByEmail ищет без учёта регистра почты.
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE LOWER(email) = LOWER($1)", userFields, userTable)
	return r.scanUser(r.storage.QueryRow(ctx, query, email))
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING %s`, userTable, userFields)

	created, err := r.scanUser(r.storage.QueryRow(ctx, query, user.Name, user.Email, user.Password))
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 - нарушение уникальности (почта уже занята)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewConflictError("пользователь с такой почтой уже зарегистрирован")
		}
		r.logger.Error("не удалось создать пользователя", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uint64, hashedPassword string) error {
	cmd, err := r.storage.Exec(ctx,
		fmt.Sprintf("UPDATE %s SET password = $1 WHERE id = $2", userTable),
		hashedPassword, userID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
