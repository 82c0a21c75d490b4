package models

import (
    "time"

    "gorm.io/gorm"
)

// One Meal (breakfast/lunch/dinner/snack)
type Meal struct {
    gorm.Model
    UserID      uint      `gorm:"index;not null"`
    Type        string    `gorm:"size:20"`
    AteAt       time.Time `gorm:"index"`
    TotalAmount float64

    Items []MealItem `gorm:"constraint:OnDelete:CASCADE"`
}

// Each MealItem carries a nutrition snapshot copied from the Food row at
// logging time. The snapshot is never rewritten: editing or deleting the
// catalog entry later must not change what history says was eaten.
type MealItem struct {
    gorm.Model
    MealID uint `gorm:"index;not null"`
    FoodID uint `gorm:"index;not null"`

    // Snapshot
    FoodName       string
    CalPerUnit     float64
    ProteinPerUnit float64
    CarbsPerUnit   float64
    FatPerUnit     float64

    Amount float64 // serving multiplier, > 0
    Unit   string
    Note   string
}

// Calories contributed by this item (amount × per-unit snapshot value).
func (i MealItem) TotalCalories() float64 { return i.Amount * i.CalPerUnit }
