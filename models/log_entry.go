package models

import (
	"time"

	"gorm.io/gorm"
)

// LogEntry is one food-diary row. Macros are absolute values for the logged
// quantity, snapshotted at write time so later pantry edits never rewrite
// history.
type LogEntry struct {
	gorm.Model
	LogDate time.Time `gorm:"index;not null" json:"log_date"`

	// Set when the entry came from consuming a pantry item; nil for
	// entries logged by hand.
	ItemID *uint `gorm:"index" json:"item_id"`

	ItemName string  `gorm:"not null" json:"item_name"`
	Quantity float64 `gorm:"not null;default:0" json:"quantity"`
	Unit     string  `json:"unit"`

	Calories float64 `gorm:"not null;default:0" json:"calories"`
	Protein  float64 `gorm:"not null;default:0" json:"protein"`
	Carbs    float64 `gorm:"not null;default:0" json:"carbs"`
	Fat      float64 `gorm:"not null;default:0" json:"fat"`

	Note string `json:"note"`
}
