package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func seedMaintenance(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'maintenance_requests'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE maintenance_requests RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	usersMap, err := mapUserIDsByEmail(ctx, tx)
	if err != nil {
		return err
	}
	equipmentInfo, err := mapEquipmentByName(ctx, tx)
	if err != nil {
		return err
	}

	query := `INSERT INTO maintenance_requests
		(subject, type, equipment_id, team_id, category, scheduled_date, status, assigned_to_user_id, created_by_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, m := range maintenanceData {
		equipment, ok := equipmentInfo[m.EquipmentName]
		if !ok {
			log.Printf("ПРЕДУПРЕЖДЕНИЕ: Оборудование '%s' не найдено, пропускаем заявку '%s'.", m.EquipmentName, m.Subject)
			continue
		}
		creatorID, ok := usersMap[m.CreatorEmail]
		if !ok {
			return fmt.Errorf("не найден автор заявки '%s'", m.CreatorEmail)
		}

		var assigneeID *uint64
		if m.AssigneeEmail != "" {
			id, ok := usersMap[m.AssigneeEmail]
			if !ok {
				return fmt.Errorf("не найден исполнитель заявки '%s'", m.AssigneeEmail)
			}
			assigneeID = &id
		}

		if _, err := tx.Exec(ctx, query,
			m.Subject, m.Type, equipment.ID, equipment.TeamID, equipment.Category,
			m.ScheduledDate, m.Status, assigneeID, creatorID,
		); err != nil {
			log.Printf("Ошибка при вставке заявки '%s': %v", m.Subject, err)
			return err
		}
	}

	return tx.Commit(ctx)
}

type seededEquipment struct {
	ID       uint64
	Category *string
	TeamID   *uint64
}

func mapEquipmentByName(ctx context.Context, tx pgx.Tx) (map[string]seededEquipment, error) {
	rows, err := tx.Query(ctx, "SELECT id, name, category, maintenance_team_id FROM equipment")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resultMap := make(map[string]seededEquipment)
	for rows.Next() {
		var e seededEquipment
		var name string
		if err := rows.Scan(&e.ID, &name, &e.Category, &e.TeamID); err != nil {
			return nil, err
		}
		resultMap[name] = e
	}
	return resultMap, rows.Err()
}
