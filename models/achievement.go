package models

import (
    "time"

    "gorm.io/gorm"
)

// Criteria types the evaluators understand.
const (
    CriteriaStreak      = "streak"
    CriteriaMealsLogged = "meals_logged"
    CriteriaGoalMetDays = "goal_met_days"
    CriteriaWeightLoss  = "weight_loss"
    CriteriaCustom      = "custom"
)

// Admin-managed achievement catalog. CriteriaValue is the threshold the
// user's metric must reach.
type Achievement struct {
    gorm.Model
    Name          string `gorm:"not null"`
    Description   string
    IconURL       string
    CriteriaType  string `gorm:"size:20;index;default:custom"`
    CriteriaValue int    `gorm:"default:1"`
}

// UserAchievement is write-once per (user, achievement): the composite
// unique index is what makes AchievementService.Award safe to call
// repeatedly and concurrently.
type UserAchievement struct {
    gorm.Model
    UserID        uint      `gorm:"not null;uniqueIndex:idx_user_achievement,priority:1"`
    AchievementID uint      `gorm:"not null;uniqueIndex:idx_user_achievement,priority:2"`
    EarnedAt      time.Time `gorm:"autoCreateTime"`
}
