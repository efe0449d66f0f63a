package seeders

import (
	"context"
	"log"

	"maintenance-system/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedUsers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'users'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE users RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	query := `INSERT INTO users (name, email, password) VALUES ($1, $2, $3)`
	for _, u := range usersData {
		hashed, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, u.Name, u.Email, hashed); err != nil {
			log.Printf("Ошибка при вставке пользователя '%s': %v", u.Email, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
