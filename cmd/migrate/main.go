package main

import (
	"log"

	"maverik-copilot-be/internal/bootstrap"
	"maverik-copilot-be/internal/config"
	"maverik-copilot-be/internal/model"

	"gorm.io/gorm/clause"
)

func main() {
	// 1. Load Environment Variables
	cfg := config.Load()

	// 2. Connect to Database using existing GORM helpers
	db, err := bootstrap.OpenDatabase(cfg.Database, true)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Catalog tables first, the survey columns reference them
	log.Println("Step 1: Running AutoMigrate for catalog tables...")
	if err := db.AutoMigrate(model.LookupModels()...); err != nil {
		log.Fatalf("Error: AutoMigrate failed for catalogs: %v", err)
	}

	log.Println("Step 2: Running AutoMigrate for users and advisory sessions...")
	models := []interface{}{
		&model.User{},
		&model.AdvisorySession{},
		&model.SessionDetail{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Seed catalog rows; existing ids are left untouched
	log.Println("Step 3: Seeding catalog rows...")
	for _, seed := range model.LookupSeeds {
		rows := seed.SeedRows()
		if err := db.Table(seed.Table).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			log.Fatalf("Error: Failed to seed %s: %v", seed.Table, err)
		}
		log.Printf("  %s: %d rows", seed.Table, len(rows))
	}

	log.Println("Migration completed successfully.")
}
