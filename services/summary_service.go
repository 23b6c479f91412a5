package services

import (
	"errors"
	"time"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/models"
	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/utils"

	"gorm.io/gorm"
)

type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

// DailySummary is one day of intake against the current targets.
type DailySummary struct {
	Date      string       `json:"date"`
	Count     int          `json:"count"`
	Consumed  utils.Macros `json:"consumed"`
	Targets   utils.Macros `json:"targets"`
	Remaining utils.Macros `json:"remaining"`
}

// ForDay sums every log entry dated within the given day. Count and the
// consumed totals are derived from the same rows, so an entry is never
// counted without also being summed. A day with no entries yields zero
// totals, not an error.
func (s *SummaryService) ForDay(day time.Time) (*DailySummary, error) {
	start, end := dayBounds(day)

	var entries []models.LogEntry
	if err := s.db.
		Where("log_date >= ? AND log_date < ?", start, end).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	var consumed utils.Macros
	for _, e := range entries {
		consumed = consumed.Add(utils.Macros{
			Calories: e.Calories,
			Protein:  e.Protein,
			Carbs:    e.Carbs,
			Fat:      e.Fat,
		})
	}

	var target models.MacroTarget
	err := s.db.First(&target).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	targets := utils.Macros{
		Calories: target.Calories,
		Protein:  target.Protein,
		Carbs:    target.Carbs,
		Fat:      target.Fat,
	}

	return &DailySummary{
		Date:      start.Format("2006-01-02"),
		Count:     len(entries),
		Consumed:  consumed,
		Targets:   targets,
		Remaining: targets.Remaining(consumed),
	}, nil
}
