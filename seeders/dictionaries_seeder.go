package seeders

import (
	"context"
	"log"

	"maintenance-system/pkg/constants"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'teams'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE teams RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	query := `INSERT INTO teams (name, members) VALUES ($1, $2)`
	for _, t := range teamsData {
		if _, err := tx.Exec(ctx, query, t.Name, t.Members); err != nil {
			log.Printf("Ошибка при вставке команды '%s': %v", t.Name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}

func seedWorkCenters(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'work_centers'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE work_centers RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	query := `INSERT INTO work_centers
		(name, code, tag, cost_per_hour, capacity_per_hour, time_efficiency_pct, oee_target_pct, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, wc := range workCentersData {
		if _, err := tx.Exec(ctx, query,
			wc.Name, wc.Code, wc.Tag,
			wc.CostPerHour, wc.CapacityPerHour, wc.TimeEfficiencyPct, wc.OeeTargetPct,
			constants.WorkCenterActive,
		); err != nil {
			log.Printf("Ошибка при вставке рабочего центра '%s': %v", wc.Name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
