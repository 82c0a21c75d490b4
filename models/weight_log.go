package models

import (
    "time"

    "gorm.io/gorm"
)

type WeightLog struct {
    gorm.Model
    UserID       uint      `gorm:"index;not null"`
    WeightKg     float64   `gorm:"not null"`
    RecordedDate time.Time `gorm:"type:date;index"`
}
