package main

import (
	"flag"
	"log"

	"maintenance-system/pkg/config"
	"maintenance-system/pkg/database/postgresql"
	"maintenance-system/seeders"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runDictionaries := flag.Bool("dictionaries", false, "Запустить наполнение справочников (команды, рабочие центры)")
	runUsers := flag.Bool("users", false, "Запустить создание демо-пользователей и оборудования")
	runMaintenance := flag.Bool("maintenance", false, "Запустить создание демо-заявок")
	runAll := flag.Bool("all", false, "Запустить все сидеры")

	flag.Parse()

	if !*runDictionaries && !*runUsers && !*runMaintenance && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -dictionaries")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")

	// Порядок важен: заявки ссылаются на пользователей и оборудование.
	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(dbPool)
		log.Println("======================================================")
	}
	if *runAll || *runUsers {
		seeders.SeedUsersAndEquipment(dbPool)
		log.Println("======================================================")
	}
	if *runAll || *runMaintenance {
		seeders.SeedMaintenanceRequests(dbPool)
		log.Println("======================================================")
	}

	log.Println("🎉 Готово!")
}
