package services

import (
	"errors"
	"time"

	"github.com/Nemoeiei/calories-guard/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SummaryService maintains the per-user-per-day DailySummary rows. The
// summary is derived state: Recompute rebuilds it in full from the meal
// items, never by patching previous totals.
type SummaryService struct {
	db    *gorm.DB
	users *UserService
}

func NewSummaryService(db *gorm.DB, users *UserService) *SummaryService {
	return &SummaryService{db: db, users: users}
}

// withDB rebinds the service to another handle so a recompute can join an
// enclosing transaction.
func (s *SummaryService) withDB(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db, users: &UserService{db: db}}
}

// GetOrCreate fetches the summary row for the day, materializing an empty
// one (zero totals, current calorie target) when none exists. It does not
// trigger a recompute.
func (s *SummaryService) GetOrCreate(userID uint, date time.Time) (*models.DailySummary, error) {
	day := truncateToDay(date)

	var summary models.DailySummary
	err := s.db.
		Where("user_id = ? AND date = ?", userID, day).
		First(&summary).Error
	if err == nil {
		return &summary, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := s.users.EnsureTargets(userID)
	if err != nil {
		return nil, err
	}

	summary = models.DailySummary{
		UserID:       userID,
		Date:         day,
		GoalCalories: user.TargetCalories,
	}
	// Concurrent first reads race on the same (user, date) key; the unique
	// index plus DoNothing makes the loser fall through to the winner's row.
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(&summary)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		err = s.db.Where("user_id = ? AND date = ?", userID, day).First(&summary).Error
		if err != nil {
			return nil, err
		}
	}
	return &summary, nil
}

// Recompute rebuilds the day's totals by summing amount × per-unit snapshot
// values over every meal item the user logged that day, then re-evaluates
// goal-met. Calling it again with no intervening writes yields identical
// values.
func (s *SummaryService) Recompute(userID uint, date time.Time) (*models.DailySummary, error) {
	start, end := dayWindow(date)

	var totals struct {
		Calories float64
		Protein  float64
		Carbs    float64
		Fat      float64
	}
	err := s.db.Model(&models.MealItem{}).
		Select(
			"COALESCE(SUM(meal_items.cal_per_unit * meal_items.amount), 0) AS calories, " +
				"COALESCE(SUM(meal_items.protein_per_unit * meal_items.amount), 0) AS protein, " +
				"COALESCE(SUM(meal_items.carbs_per_unit * meal_items.amount), 0) AS carbs, " +
				"COALESCE(SUM(meal_items.fat_per_unit * meal_items.amount), 0) AS fat").
		Joins("JOIN meals ON meals.id = meal_items.meal_id").
		Where("meals.user_id = ? AND meals.ate_at >= ? AND meals.ate_at < ? AND meals.deleted_at IS NULL", userID, start, end).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	summary, err := s.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}

	wasGoalMet := summary.IsGoalMet
	summary.TotalCalories = totals.Calories
	summary.TotalProtein = totals.Protein
	summary.TotalCarbs = totals.Carbs
	summary.TotalFat = totals.Fat
	// Strict non-exceedance: hitting the target exactly still counts.
	summary.IsGoalMet = summary.TotalCalories <= float64(summary.GoalCalories)

	err = s.db.Model(summary).Updates(map[string]interface{}{
		"total_calories": summary.TotalCalories,
		"total_protein":  summary.TotalProtein,
		"total_carbs":    summary.TotalCarbs,
		"total_fat":      summary.TotalFat,
		"is_goal_met":    summary.IsGoalMet,
	}).Error
	if err != nil {
		return nil, err
	}
	if summary.IsGoalMet && !wasGoalMet && summary.TotalCalories > 0 {
		EmitGoalMet(userID, summary)
	}
	return summary, nil
}

// SetWaterGlasses records the day's water intake on the summary row.
func (s *SummaryService) SetWaterGlasses(userID uint, date time.Time, glasses int) (*models.DailySummary, error) {
	if glasses < 0 {
		return nil, ErrInvalidInput
	}
	summary, err := s.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(summary).Update("water_glasses", glasses).Error; err != nil {
		return nil, err
	}
	summary.WaterGlasses = glasses
	return summary, nil
}

// GoalMetDays counts how many recorded days met the calorie goal.
func (s *SummaryService) GoalMetDays(userID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.DailySummary{}).
		Where("user_id = ? AND is_goal_met = ?", userID, true).
		Count(&n).Error
	return n, err
}

// Range returns summaries between two dates inclusive, oldest first.
func (s *SummaryService) Range(userID uint, from, to time.Time) ([]models.DailySummary, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)
	if to.Before(from) {
		return nil, ErrInvalidInput
	}
	var summaries []models.DailySummary
	err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&summaries).Error
	return summaries, err
}

// ApportionMacros estimates a macro's share of an item's calories from the
// food's overall macro-to-calorie ratio. This is an approximation for
// catalog generations that only stored calories per line item: when a
// food's stated macros don't exactly match its stated calories, the grams
// derived here won't either. A zero or missing source calorie value
// contributes zero rather than dividing by it.
func ApportionMacros(itemCalories float64, food *models.Food) (protein, carbs, fat float64) {
	if food == nil || food.Calories <= 0 {
		return 0, 0, 0
	}
	return itemCalories * (food.Protein / food.Calories),
		itemCalories * (food.Carbs / food.Calories),
		itemCalories * (food.Fat / food.Calories)
}
