package config

import (
	"fmt"
	"log/slog"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodEntry{},
		&models.Workout{},
		&models.DailyGoal{},
		&models.RefreshSession{},
		&models.ChatMessage{},
		&models.Alert{},
		&models.UserDevice{},
	)
	if err != nil {
		slog.Error("AutoMigrate failed", "error", err)
		os.Exit(1)
	}
}
