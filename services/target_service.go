package services

import (
	"errors"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/models"
	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/utils"

	"gorm.io/gorm"
)

type TargetService struct {
	db *gorm.DB
}

func NewTargetService(db *gorm.DB) *TargetService {
	return &TargetService{db: db}
}

// Get returns the current daily targets, zero-valued if none were ever set.
func (s *TargetService) Get() (*models.MacroTarget, error) {
	var target models.MacroTarget
	err := s.db.First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.MacroTarget{}, nil
		}
		return nil, err
	}
	return &target, nil
}

// Upsert overwrites the singleton targets row, creating it on first use.
func (s *TargetService) Upsert(m utils.Macros) (*models.MacroTarget, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"calories", m.Calories},
		{"protein", m.Protein},
		{"carbs", m.Carbs},
		{"fat", m.Fat},
	} {
		if err := nonNegative(f.name, f.v); err != nil {
			return nil, err
		}
	}

	var target models.MacroTarget
	err := s.db.First(&target).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	target.Calories = m.Calories
	target.Protein = m.Protein
	target.Carbs = m.Carbs
	target.Fat = m.Fat

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.Create(&target).Error; err != nil {
			return nil, err
		}
		return &target, nil
	}
	if err := s.db.Save(&target).Error; err != nil {
		return nil, err
	}
	return &target, nil
}
