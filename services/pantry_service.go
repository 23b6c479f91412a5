package services

import (
	"errors"
	"strings"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/models"

	"gorm.io/gorm"
)

type PantryService struct {
	db *gorm.DB
}

func NewPantryService(db *gorm.DB) *PantryService {
	return &PantryService{db: db}
}

// PantryItemRequest is the create payload. All macro fields are per unit.
type PantryItemRequest struct {
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	CaloriesPerUnit float64 `json:"calories_per_unit"`
	ProteinPerUnit  float64 `json:"protein_per_unit"`
	CarbsPerUnit    float64 `json:"carbs_per_unit"`
	FatPerUnit      float64 `json:"fat_per_unit"`
}

// PantryItemUpdate is the partial-update payload; nil fields are left alone.
type PantryItemUpdate struct {
	Name            *string  `json:"name"`
	Quantity        *float64 `json:"quantity"`
	Unit            *string  `json:"unit"`
	CaloriesPerUnit *float64 `json:"calories_per_unit"`
	ProteinPerUnit  *float64 `json:"protein_per_unit"`
	CarbsPerUnit    *float64 `json:"carbs_per_unit"`
	FatPerUnit      *float64 `json:"fat_per_unit"`
}

func (s *PantryService) Create(req PantryItemRequest) (*models.PantryItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name", "required")
	}
	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		return nil, invalid("unit", "required")
	}
	if err := nonNegative("quantity", req.Quantity); err != nil {
		return nil, err
	}
	if err := validateUnitMacros(req.CaloriesPerUnit, req.ProteinPerUnit, req.CarbsPerUnit, req.FatPerUnit); err != nil {
		return nil, err
	}

	item := &models.PantryItem{
		Name:            name,
		Quantity:        req.Quantity,
		Unit:            unit,
		CaloriesPerUnit: req.CaloriesPerUnit,
		ProteinPerUnit:  req.ProteinPerUnit,
		CarbsPerUnit:    req.CarbsPerUnit,
		FatPerUnit:      req.FatPerUnit,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PantryService) List() ([]models.PantryItem, error) {
	var items []models.PantryItem
	// id breaks ties between rows created in the same instant
	err := s.db.Order("created_at DESC, id DESC").Find(&items).Error
	return items, err
}

func (s *PantryService) Get(id uint) (*models.PantryItem, error) {
	var item models.PantryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *PantryService) Update(id uint, req PantryItemUpdate) (*models.PantryItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	touched := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalid("name", "must not be empty")
		}
		item.Name = name
		touched = true
	}
	if req.Unit != nil {
		unit := strings.TrimSpace(*req.Unit)
		if unit == "" {
			return nil, invalid("unit", "must not be empty")
		}
		item.Unit = unit
		touched = true
	}
	if req.Quantity != nil {
		if err := nonNegative("quantity", *req.Quantity); err != nil {
			return nil, err
		}
		item.Quantity = *req.Quantity
		touched = true
	}
	for _, f := range []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"calories_per_unit", req.CaloriesPerUnit, &item.CaloriesPerUnit},
		{"protein_per_unit", req.ProteinPerUnit, &item.ProteinPerUnit},
		{"carbs_per_unit", req.CarbsPerUnit, &item.CarbsPerUnit},
		{"fat_per_unit", req.FatPerUnit, &item.FatPerUnit},
	} {
		if f.src == nil {
			continue
		}
		if err := nonNegative(f.name, *f.src); err != nil {
			return nil, err
		}
		*f.dst = *f.src
		touched = true
	}
	if !touched {
		return nil, invalid("body", "no fields to update")
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PantryService) Delete(id uint) error {
	res := s.db.Delete(&models.PantryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func validateUnitMacros(calories, protein, carbs, fat float64) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"calories_per_unit", calories},
		{"protein_per_unit", protein},
		{"carbs_per_unit", carbs},
		{"fat_per_unit", fat},
	} {
		if err := nonNegative(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}
