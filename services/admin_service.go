package services

import (
	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/models"

	"gorm.io/gorm"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// ResetAll wipes every pantry item and diary entry. Targets survive.
func (s *AdminService) ResetAll() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.LogEntry{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("1 = 1").Delete(&models.PantryItem{}).Error
	})
}
