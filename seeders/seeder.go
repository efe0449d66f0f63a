package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries наполняет справочники без зависимостей: команды и
// рабочие центры.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения справочников...")

	if err := seedTeams(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Команд (Teams): %v", err)
	}
	if err := seedWorkCenters(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Рабочих центров (WorkCenters): %v", err)
	}
	log.Println("✅ Наполнение справочников завершено!")
}

// SeedUsersAndEquipment создаёт демо-пользователей и оборудование.
// Зависит от справочников.
func SeedUsersAndEquipment(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения пользователей и оборудования...")

	if err := seedUsers(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Пользователей (Users): %v", err)
	}
	if err := seedEquipments(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Оборудования (Equipment): %v", err)
	}
	log.Println("✅ Наполнение пользователей и оборудования завершено!")
}

// SeedMaintenanceRequests создаёт демо-заявки. Зависит от всего остального.
func SeedMaintenanceRequests(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения заявок на обслуживание...")

	if err := seedMaintenance(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Заявок (MaintenanceRequests): %v", err)
	}
	log.Println("✅ Наполнение заявок завершено!")
}

func mapAllIDsByName(ctx context.Context, tx pgx.Tx, table string) (map[string]uint64, error) {
	query := fmt.Sprintf("SELECT id, name FROM %s", table)
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resultMap := make(map[string]uint64)
	for rows.Next() {
		var id uint64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		resultMap[name] = id
	}
	return resultMap, rows.Err()
}

func mapUserIDsByEmail(ctx context.Context, tx pgx.Tx) (map[string]uint64, error) {
	rows, err := tx.Query(ctx, "SELECT id, email FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resultMap := make(map[string]uint64)
	for rows.Next() {
		var id uint64
		var email string
		if err := rows.Scan(&id, &email); err != nil {
			return nil, err
		}
		resultMap[email] = id
	}
	return resultMap, rows.Err()
}
