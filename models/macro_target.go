package models

import "gorm.io/gorm"

// MacroTarget holds the daily intake targets. A single row exists at any
// time; updates overwrite it in place.
type MacroTarget struct {
	gorm.Model
	Calories float64 `gorm:"not null;default:0" json:"calories"` // kcal
	Protein  float64 `gorm:"not null;default:0" json:"protein"`  // g
	Carbs    float64 `gorm:"not null;default:0" json:"carbs"`    // g
	Fat      float64 `gorm:"not null;default:0" json:"fat"`      // g
}
