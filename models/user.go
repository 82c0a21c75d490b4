package models

import (
    "time"

    "gorm.io/gorm"
)

// Goal types a user can pick when setting up their plan.
const (
    GoalLoseWeight     = "lose_weight"
    GoalMaintainWeight = "maintain_weight"
    GoalGainMuscle     = "gain_muscle"
)

// Activity levels understood by the TDEE multiplier table.
const (
    ActivitySedentary        = "sedentary"
    ActivityLightlyActive    = "lightly_active"
    ActivityModeratelyActive = "moderately_active"
    ActivityVeryActive       = "very_active"
)

type User struct {
    gorm.Model
    Email        string `gorm:"uniqueIndex;not null"`
    PasswordHash string `gorm:"not null" json:"-"`
    Username     string

    // Profile / body metrics
    Gender          string     `gorm:"size:10"` // "male" | "female"
    BirthDate       *time.Time `gorm:"type:date"`
    HeightCm        float64
    CurrentWeightKg float64
    TargetWeightKg  float64
    GoalType        string     `gorm:"size:20"`
    ActivityLevel   string     `gorm:"size:20"`
    GoalStartDate   *time.Time `gorm:"type:date"`
    GoalTargetDate  *time.Time `gorm:"type:date"`

    // Derived targets, computed once from the profile and then cached here.
    // Zero means "not computed yet"; see UserService.EnsureTargets.
    TargetCalories int
    TargetProtein  int
    TargetCarbs    int
    TargetFat      int

    // Streak state, written only by StreakService.Touch.
    CurrentStreak     int        `gorm:"default:0"`
    LastActivityDate  *time.Time `gorm:"type:date"`
    TotalActivityDays int        `gorm:"default:0"`
}
