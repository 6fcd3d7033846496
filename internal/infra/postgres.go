package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"keliauk/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(
		&db_models.Attraction{},
		&db_models.Race{},
		&db_models.Friend{},
		&db_models.Account{},
		&db_models.SavedRoute{},
		&db_models.RoutePoint{},
		&db_models.Complaint{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err := SeedCatalog(db); err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
