package models

import "gorm.io/gorm"

// A catalog entry. Nutrient values are per serving; zero means the source
// had no data for that nutrient. Rows are soft-deleted so logged meals can
// keep referencing them.
type Food struct {
    gorm.Model
    Name     string `gorm:"not null;index"`
    FoodType string `gorm:"size:20;default:raw_ingredient"` // "raw_ingredient" | "recipe_dish"

    Calories float64
    Protein  float64
    Carbs    float64
    Fat      float64

    ServingQty  float64 `gorm:"default:100"`
    ServingUnit string  `gorm:"default:g"`
    ImageURL    string
}
