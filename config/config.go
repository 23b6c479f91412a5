package config

import (
	"fmt"
	"log"
	"os"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config carries everything read from the environment. A .env file is
// honored when present; every default works for a local single-user setup.
type Config struct {
	Port       string
	DBDriver   string // "sqlite" or "postgres"
	DBPath     string // sqlite only
	EnableCORS bool
	LogLevel   string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment defaults")
	}

	return Config{
		Port:       getenv("PORT", "8080"),
		DBDriver:   getenv("DB_DRIVER", "sqlite"),
		DBPath:     getenv("DB_PATH", "pantry.db"),
		EnableCORS: getenv("ENABLE_CORS", "false") == "true",
		LogLevel:   getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB(cfg Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.PantryItem{},
		&models.LogEntry{},
		&models.MacroTarget{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}
