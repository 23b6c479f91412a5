package services

import (
	"testing"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.PantryItem{},
		&models.LogEntry{},
		&models.MacroTarget{},
	)
	require.NoError(t, err)

	return db
}
