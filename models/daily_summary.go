package models

import (
    "time"

    "gorm.io/gorm"
)

// DailySummary is a materialized view over a user's meal items for one day.
// It is always reconstructible from the items; SummaryService.Recompute is
// the only writer of the totals.
type DailySummary struct {
    gorm.Model
    UserID uint      `gorm:"not null;uniqueIndex:idx_summary_user_date,priority:1"`
    Date   time.Time `gorm:"type:date;not null;uniqueIndex:idx_summary_user_date,priority:2"`

    TotalCalories float64
    TotalProtein  float64
    TotalCarbs    float64
    TotalFat      float64

    GoalCalories int
    IsGoalMet    bool `gorm:"default:false"`

    WaterGlasses int `gorm:"default:0"`
}
