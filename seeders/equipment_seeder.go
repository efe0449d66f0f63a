package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedEquipments(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'equipment'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE equipment RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	teamsMap, err := mapAllIDsByName(ctx, tx, "teams")
	if err != nil {
		return err
	}
	workCentersMap, err := mapAllIDsByName(ctx, tx, "work_centers")
	if err != nil {
		return err
	}

	query := `INSERT INTO equipment
		(name, category, department, serial_number, maintenance_team_id, work_center_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, e := range equipmentsData {
		teamID, ok := teamsMap[e.TeamName]
		if !ok {
			log.Printf("ПРЕДУПРЕЖДЕНИЕ: Команда '%s' не найдена, пропускаем оборудование '%s'.", e.TeamName, e.Name)
			continue
		}
		workCenterID, ok := workCentersMap[e.WorkCenterName]
		if !ok {
			log.Printf("ПРЕДУПРЕЖДЕНИЕ: Рабочий центр '%s' не найден, пропускаем оборудование '%s'.", e.WorkCenterName, e.Name)
			continue
		}

		if _, err := tx.Exec(ctx, query, e.Name, e.Category, e.Department, e.SerialNumber, teamID, workCenterID); err != nil {
			log.Printf("Ошибка при вставке оборудования '%s': %v", e.Name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
