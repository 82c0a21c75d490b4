package services

import (
	"errors"
	"time"

	"github.com/Nemoeiei/calories-guard/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AchievementService evaluates achievement criteria against accumulated
// facts and records one-time awards. It reads from the meal ledger and the
// daily summaries but never writes to them.
type AchievementService struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

// EarnedAchievement is an award row joined with its catalog entry.
type EarnedAchievement struct {
	ID            uint      `json:"id"`
	AchievementID uint      `json:"achievement_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	IconURL       string    `json:"icon_url"`
	CriteriaType  string    `json:"criteria_type"`
	CriteriaValue int       `json:"criteria_value"`
	EarnedAt      time.Time `json:"earned_at"`
}

// Award inserts the (user, achievement) pair unless it already exists.
// Returns true when a new row was written. Duplicates are absorbed by the
// unique index, so the call is safe to repeat and to race.
func (s *AchievementService) Award(userID, achievementID uint) (bool, error) {
	ua := models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		EarnedAt:      time.Now(),
	}
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(&ua)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *AchievementService) ListAll() ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.db.Order("id ASC").Find(&achievements).Error
	return achievements, err
}

// UserAchievements lists what the user has earned, newest first.
func (s *AchievementService) UserAchievements(userID uint) ([]EarnedAchievement, error) {
	var rows []EarnedAchievement
	err := s.db.
		Table("user_achievements").
		Select("user_achievements.id, user_achievements.achievement_id, achievements.name, " +
			"achievements.description, achievements.icon_url, achievements.criteria_type, " +
			"achievements.criteria_value, user_achievements.earned_at").
		Joins("JOIN achievements ON achievements.id = user_achievements.achievement_id").
		Where("user_achievements.user_id = ? AND user_achievements.deleted_at IS NULL", userID).
		Order("user_achievements.earned_at DESC").
		Scan(&rows).Error
	return rows, err
}

// awardMetric awards every achievement of the given criteria type whose
// threshold the metric meets, lowest threshold first, and returns only the
// newly awarded ones. Re-running is harmless because Award is idempotent.
func (s *AchievementService) awardMetric(userID uint, criteriaType string, metric int64) ([]models.Achievement, error) {
	var candidates []models.Achievement
	err := s.db.
		Where("criteria_type = ?", criteriaType).
		Order("criteria_value ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	var awarded []models.Achievement
	for _, a := range candidates {
		if metric < int64(a.CriteriaValue) {
			continue
		}
		isNew, err := s.Award(userID, a.ID)
		if err != nil {
			return awarded, err
		}
		if isNew {
			awarded = append(awarded, a)
		}
	}
	return awarded, nil
}

// EvaluateStreak awards streak achievements the given streak satisfies.
func (s *AchievementService) EvaluateStreak(userID uint, currentStreak int) ([]models.Achievement, error) {
	return s.awardMetric(userID, models.CriteriaStreak, int64(currentStreak))
}

// EvaluateMealsLogged counts the user's meals and awards accordingly.
func (s *AchievementService) EvaluateMealsLogged(userID uint) ([]models.Achievement, error) {
	var mealCount int64
	err := s.db.Model(&models.Meal{}).Where("user_id = ?", userID).Count(&mealCount).Error
	if err != nil {
		return nil, err
	}
	return s.awardMetric(userID, models.CriteriaMealsLogged, mealCount)
}

// EvaluateGoalMetDays counts days with the calorie goal met and awards
// accordingly.
func (s *AchievementService) EvaluateGoalMetDays(userID uint) ([]models.Achievement, error) {
	var days int64
	err := s.db.Model(&models.DailySummary{}).
		Where("user_id = ? AND is_goal_met = ?", userID, true).
		Count(&days).Error
	if err != nil {
		return nil, err
	}
	return s.awardMetric(userID, models.CriteriaGoalMetDays, days)
}

// EvaluateWeightLoss awards weight_loss achievements from the kilograms
// shed between the first and the latest weight log.
func (s *AchievementService) EvaluateWeightLoss(userID uint) ([]models.Achievement, error) {
	var first, latest models.WeightLog
	err := s.db.Where("user_id = ?", userID).Order("recorded_date ASC").First(&first).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	err = s.db.Where("user_id = ?", userID).Order("recorded_date DESC").First(&latest).Error
	if err != nil {
		return nil, err
	}

	lostKg := int64(first.WeightKg - latest.WeightKg)
	if lostKg <= 0 {
		return nil, nil
	}
	return s.awardMetric(userID, models.CriteriaWeightLoss, lostKg)
}

// CheckAll runs every evaluator for the user and returns the combined list
// of newly awarded achievements. New awards are announced on the event bus.
func (s *AchievementService) CheckAll(userID uint, currentStreak int) ([]models.Achievement, error) {
	var all []models.Achievement

	evaluators := []func() ([]models.Achievement, error){
		func() ([]models.Achievement, error) { return s.EvaluateStreak(userID, currentStreak) },
		func() ([]models.Achievement, error) { return s.EvaluateMealsLogged(userID) },
		func() ([]models.Achievement, error) { return s.EvaluateGoalMetDays(userID) },
		func() ([]models.Achievement, error) { return s.EvaluateWeightLoss(userID) },
	}
	for _, eval := range evaluators {
		awarded, err := eval()
		if err != nil {
			return all, err
		}
		all = append(all, awarded...)
	}

	for _, a := range all {
		EmitAchievement(userID, &a)
	}
	return all, nil
}

// GamificationStats bundles streak state with earned achievements.
type GamificationStats struct {
	UserID            uint                `json:"user_id"`
	CurrentStreak     int                 `json:"current_streak"`
	TotalActivityDays int                 `json:"total_activity_days"`
	LastActivityDate  *time.Time          `json:"last_activity_date"`
	TotalAchievements int                 `json:"total_achievements"`
	Achievements      []EarnedAchievement `json:"achievements"`
}

func (s *AchievementService) Stats(userID uint) (*GamificationStats, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	earned, err := s.UserAchievements(userID)
	if err != nil {
		return nil, err
	}

	return &GamificationStats{
		UserID:            user.ID,
		CurrentStreak:     user.CurrentStreak,
		TotalActivityDays: user.TotalActivityDays,
		LastActivityDate:  user.LastActivityDate,
		TotalAchievements: len(earned),
		Achievements:      earned,
	}, nil
}
