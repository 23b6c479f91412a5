package models

import "gorm.io/gorm"

// PantryItem is one tracked inventory row. Macros are stored per unit so
// any consumed quantity can be priced out later.
type PantryItem struct {
	gorm.Model
	Name     string  `gorm:"not null" json:"name"`
	Quantity float64 `gorm:"not null;default:0" json:"quantity"`
	Unit     string  `gorm:"not null;default:'g'" json:"unit"`

	CaloriesPerUnit float64 `gorm:"not null;default:0" json:"calories_per_unit"`
	ProteinPerUnit  float64 `gorm:"not null;default:0" json:"protein_per_unit"`
	CarbsPerUnit    float64 `gorm:"not null;default:0" json:"carbs_per_unit"`
	FatPerUnit      float64 `gorm:"not null;default:0" json:"fat_per_unit"`
}
