package services

import (
	"errors"
	"strings"
	"time"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/models"
	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/utils"

	"gorm.io/gorm"
)

type LogService struct {
	db *gorm.DB
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db}
}

// LogEntryRequest is the payload for a hand-logged diary entry. Macros are
// absolute values for the logged quantity, not per unit.
type LogEntryRequest struct {
	ItemName string  `json:"item_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Note     string  `json:"note"`
}

// ConsumeRequest logs intake straight from a pantry item.
type ConsumeRequest struct {
	ItemID   uint    `json:"item_id"`
	Quantity float64 `json:"quantity"`
	Note     string  `json:"note"`
}

func (s *LogService) AddEntry(day time.Time, req LogEntryRequest) (*models.LogEntry, error) {
	if err := validateEntry(&req); err != nil {
		return nil, err
	}

	entry := &models.LogEntry{
		LogDate:  startOfDay(day),
		ItemName: strings.TrimSpace(req.ItemName),
		Quantity: req.Quantity,
		Unit:     strings.TrimSpace(req.Unit),
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Note:     req.Note,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// Consume deducts quantity from a pantry item and writes the matching diary
// entry, dated today. The deduction floors at zero; the logged macros always
// reflect the full requested quantity. Both writes happen in one transaction.
func (s *LogService) Consume(req ConsumeRequest) (*models.LogEntry, error) {
	if err := positive("quantity", req.Quantity); err != nil {
		return nil, err
	}

	var entry *models.LogEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.PantryItem
		if err := tx.First(&item, req.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		perUnit := utils.Macros{
			Calories: item.CaloriesPerUnit,
			Protein:  item.ProteinPerUnit,
			Carbs:    item.CarbsPerUnit,
			Fat:      item.FatPerUnit,
		}
		consumed := perUnit.Scale(req.Quantity)

		newQty := item.Quantity - req.Quantity
		if newQty < 0 {
			newQty = 0
		}
		if err := tx.Model(&item).Update("quantity", newQty).Error; err != nil {
			return err
		}

		itemID := item.ID
		entry = &models.LogEntry{
			LogDate:  startOfDay(time.Now()),
			ItemID:   &itemID,
			ItemName: item.Name,
			Quantity: req.Quantity,
			Unit:     item.Unit,
			Calories: consumed.Calories,
			Protein:  consumed.Protein,
			Carbs:    consumed.Carbs,
			Fat:      consumed.Fat,
			Note:     req.Note,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LogService) ListByDay(day time.Time) ([]models.LogEntry, error) {
	start, end := dayBounds(day)
	var entries []models.LogEntry
	err := s.db.
		Where("log_date >= ? AND log_date < ?", start, end).
		// id breaks ties between rows created in the same instant
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// UpdateEntry replaces an entry's fields wholesale; the entry keeps its day.
func (s *LogService) UpdateEntry(id uint, req LogEntryRequest) (*models.LogEntry, error) {
	if err := validateEntry(&req); err != nil {
		return nil, err
	}

	var entry models.LogEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entry.ItemName = strings.TrimSpace(req.ItemName)
	entry.Quantity = req.Quantity
	entry.Unit = strings.TrimSpace(req.Unit)
	entry.Calories = req.Calories
	entry.Protein = req.Protein
	entry.Carbs = req.Carbs
	entry.Fat = req.Fat
	entry.Note = req.Note

	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *LogService) DeleteEntry(id uint) error {
	res := s.db.Delete(&models.LogEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func validateEntry(req *LogEntryRequest) error {
	if strings.TrimSpace(req.ItemName) == "" {
		return invalid("item_name", "required")
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"quantity", req.Quantity},
		{"calories", req.Calories},
		{"protein", req.Protein},
		{"carbs", req.Carbs},
		{"fat", req.Fat},
	} {
		if err := nonNegative(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}
