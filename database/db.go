package database

import (
	"log"

	"stellartours/config"
	"stellartours/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the global GORM handle.
var DB *gorm.DB

// InitDB initializes the Postgres connection and migrates the schema.
func InitDB() {
	db, err := gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to Postgres: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.Accommodation{},
		&models.ChatMessage{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	DB = db
	log.Println("Connected to Postgres successfully!")
}
