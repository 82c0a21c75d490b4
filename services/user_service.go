package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Nemoeiei/calories-guard/models"
	"github.com/Nemoeiei/calories-guard/utils"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the editable profile fields. Pointers distinguish
// "leave unchanged" from explicit values.
type ProfileUpdate struct {
	Username        *string
	Gender          *string
	BirthDate       *time.Time
	HeightCm        *float64
	CurrentWeightKg *float64
	TargetWeightKg  *float64
	GoalType        *string
	ActivityLevel   *string
	GoalStartDate   *time.Time
	GoalTargetDate  *time.Time
}

// UpdateProfile applies the changes and, if anything feeding the energy
// model changed, drops the cached targets so the next read recomputes them.
func (s *UserService) UpdateProfile(userID uint, upd ProfileUpdate) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	metricsChanged := false
	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.Gender != nil {
		user.Gender = *upd.Gender
		metricsChanged = true
	}
	if upd.BirthDate != nil {
		user.BirthDate = upd.BirthDate
		metricsChanged = true
	}
	if upd.HeightCm != nil {
		if *upd.HeightCm <= 0 {
			return nil, fmt.Errorf("height must be positive: %w", ErrInvalidInput)
		}
		user.HeightCm = *upd.HeightCm
		metricsChanged = true
	}
	if upd.CurrentWeightKg != nil {
		if *upd.CurrentWeightKg <= 0 {
			return nil, fmt.Errorf("weight must be positive: %w", ErrInvalidInput)
		}
		user.CurrentWeightKg = *upd.CurrentWeightKg
		metricsChanged = true
	}
	if upd.TargetWeightKg != nil {
		user.TargetWeightKg = *upd.TargetWeightKg
		metricsChanged = true
	}
	if upd.GoalType != nil {
		user.GoalType = *upd.GoalType
		metricsChanged = true
	}
	if upd.ActivityLevel != nil {
		user.ActivityLevel = *upd.ActivityLevel
		metricsChanged = true
	}
	if upd.GoalStartDate != nil {
		user.GoalStartDate = upd.GoalStartDate
		metricsChanged = true
	}
	if upd.GoalTargetDate != nil {
		user.GoalTargetDate = upd.GoalTargetDate
		metricsChanged = true
	}

	if metricsChanged {
		user.TargetCalories = 0
		user.TargetProtein = 0
		user.TargetCarbs = 0
		user.TargetFat = 0
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureTargets is the one cache-fill rule for target_* fields: return the
// stored values if present, otherwise compute them from the profile via the
// energy model and persist before returning.
func (s *UserService) EnsureTargets(userID uint) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if user.TargetCalories > 0 {
		return user, nil
	}

	cal, err := utils.TargetCalories(user)
	if err != nil {
		return nil, fmt.Errorf("derive targets: %w", err)
	}
	protein, carbs, fat := utils.TargetMacros(cal, user.GoalType)

	user.TargetCalories = cal
	user.TargetProtein = protein
	user.TargetCarbs = carbs
	user.TargetFat = fat

	err = s.db.Model(user).Updates(map[string]interface{}{
		"target_calories": cal,
		"target_protein":  protein,
		"target_carbs":    carbs,
		"target_fat":      fat,
	}).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetTargets(userID uint, calories, protein, carbs, fat int) error {
	res := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"target_calories": calories,
			"target_protein":  protein,
			"target_carbs":    carbs,
			"target_fat":      fat,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	return nil
}

// LogWeight records a weight measurement and keeps the profile's current
// weight in sync with the latest entry.
func (s *UserService) LogWeight(userID uint, weightKg float64, recordedDate time.Time) (*models.WeightLog, error) {
	if weightKg <= 0 {
		return nil, fmt.Errorf("weight must be positive: %w", ErrInvalidInput)
	}
	if recordedDate.IsZero() {
		recordedDate = time.Now()
	}
	log := &models.WeightLog{
		UserID:       userID,
		WeightKg:     weightKg,
		RecordedDate: truncateToDay(recordedDate),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(log).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("current_weight_kg", weightKg).Error
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

func (s *UserService) WeightHistory(userID uint, limit int) ([]models.WeightLog, error) {
	if limit <= 0 {
		limit = 30
	}
	var logs []models.WeightLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("recorded_date DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
