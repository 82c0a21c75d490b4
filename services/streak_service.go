package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Nemoeiei/calories-guard/models"
	"gorm.io/gorm"
)

// StreakService keeps the consecutive-activity counter on the user row.
type StreakService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewStreakService(db *gorm.DB) *StreakService {
	return &StreakService{db: db, now: time.Now}
}

// Touch advances the streak state for "today":
//
//	no prior activity  -> streak 1
//	last activity -1d  -> streak + 1
//	last activity 0d   -> no-op (repeated calls within a day must not count)
//	older              -> streak resets to 1
//
// Total activity days advance on every non-duplicate touch. The conditional
// WHERE on last_activity_date makes the same-day guard hold under
// concurrent logins: only one update can move the date forward.
func (s *StreakService) Touch(userID uint) (*models.User, error) {
	today := truncateToDay(s.now())

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, err
	}

	if user.LastActivityDate != nil && !truncateToDay(*user.LastActivityDate).Before(today) {
		// Already touched today.
		return &user, nil
	}

	newStreak := 1
	if user.LastActivityDate != nil {
		gap := int(today.Sub(truncateToDay(*user.LastActivityDate)).Hours() / 24)
		if gap == 1 {
			newStreak = user.CurrentStreak + 1
		}
	}

	res := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Where("last_activity_date IS NULL OR last_activity_date < ?", today).
		Updates(map[string]interface{}{
			"current_streak":      newStreak,
			"last_activity_date":  today,
			"total_activity_days": gorm.Expr("total_activity_days + 1"),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race to a concurrent touch; re-read the winner's state.
		if err := s.db.First(&user, userID).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	user.CurrentStreak = newStreak
	user.LastActivityDate = &today
	user.TotalActivityDays++
	return &user, nil
}
