package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Nemoeiei/calories-guard/models"
	"gorm.io/gorm"
)

// MealService owns the meal ledger: the append-only record of what was
// actually eaten. Items freeze the food's nutrient values at logging time.
type MealService struct {
	db        *gorm.DB
	foodSvc   *FoodService
	summaries *SummaryService
}

func NewMealService(db *gorm.DB, fs *FoodService, ss *SummaryService) *MealService {
	return &MealService{db: db, foodSvc: fs, summaries: ss}
}

type MealItemRequest struct {
	FoodID uint    `json:"food_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Unit   string  `json:"unit"`
	Note   string  `json:"note"`
}

// CreateMeal writes the meal header. A zero timestamp means "now".
func (s *MealService) CreateMeal(userID uint, mealType string, ateAt time.Time) (*models.Meal, error) {
	if ateAt.IsZero() {
		ateAt = time.Now()
	}
	meal := &models.Meal{UserID: userID, Type: mealType, AteAt: ateAt}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// AddItem snapshots the food's current nutrient values onto a new line
// item. Amount is assumed validated (> 0) at the request boundary.
func (s *MealService) AddItem(mealID uint, req MealItemRequest) (*models.MealItem, error) {
	return s.addItemTx(s.db, mealID, req)
}

func (s *MealService) addItemTx(tx *gorm.DB, mealID uint, req MealItemRequest) (*models.MealItem, error) {
	var food models.Food
	if err := tx.First(&food, req.FoodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food %d: %w", req.FoodID, ErrNotFound)
		}
		return nil, err
	}

	item := &models.MealItem{
		MealID: mealID,
		FoodID: food.ID,
		// Snapshot: copied now so later catalog edits can't rewrite history.
		FoodName:       food.Name,
		CalPerUnit:     food.Calories,
		ProteinPerUnit: food.Protein,
		CarbsPerUnit:   food.Carbs,
		FatPerUnit:     food.Fat,
		Amount:         req.Amount,
		Unit:           req.Unit,
		Note:           req.Note,
	}
	if err := tx.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// LogMeal is the compound logging action: meal header, all items, total
// amount, and the day's summary recompute, all inside one transaction so a
// failed write leaves no partial state behind.
func (s *MealService) LogMeal(userID uint, mealType string, ateAt time.Time, items []MealItemRequest) (*models.Meal, error) {
	if ateAt.IsZero() {
		ateAt = time.Now()
	}

	var mealID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		meal := &models.Meal{UserID: userID, Type: mealType, AteAt: ateAt}
		if err := tx.Create(meal).Error; err != nil {
			return err
		}

		var totalAmount float64
		for _, req := range items {
			if _, err := s.addItemTx(tx, meal.ID, req); err != nil {
				return err
			}
			totalAmount += req.Amount
		}
		if err := tx.Model(meal).Update("total_amount", totalAmount).Error; err != nil {
			return err
		}
		mealID = meal.ID

		_, err := s.summaries.withDB(tx).Recompute(userID, ateAt)
		return err
	})
	if err != nil {
		return nil, err
	}

	var populated models.Meal
	if err := s.db.Preload("Items").First(&populated, mealID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// DeleteMeal removes the meal and its items, then recomputes the affected
// day. Reports whether a meal row existed.
func (s *MealService) DeleteMeal(userID, mealID uint) (bool, error) {
	var meal models.Meal
	err := s.db.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&meal).Error; err != nil {
			return err
		}
		_, err := s.summaries.withDB(tx).Recompute(userID, meal.AteAt)
		return err
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// ClearCategory deletes every meal of the given category on the given day
// and forces a recompute.
func (s *MealService) ClearCategory(userID uint, date time.Time, mealType string) error {
	start, end := dayWindow(date)

	return s.db.Transaction(func(tx *gorm.DB) error {
		var meals []models.Meal
		err := tx.
			Where("user_id = ? AND type = ? AND ate_at >= ? AND ate_at < ?", userID, mealType, start, end).
			Find(&meals).Error
		if err != nil {
			return err
		}
		for _, m := range meals {
			if err := tx.Where("meal_id = ?", m.ID).Delete(&models.MealItem{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&m).Error; err != nil {
				return err
			}
		}
		_, err = s.summaries.withDB(tx).Recompute(userID, date)
		return err
	})
}

// MealsByDate lists the day's meals with items, ordered by meal time
// ascending. This is the aggregator's read path.
func (s *MealService) MealsByDate(userID uint, date time.Time) ([]models.Meal, error) {
	start, end := dayWindow(date)

	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Order("ate_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("meal %d: %w", mealID, ErrNotFound)
		}
		return nil, err
	}
	return &meal, nil
}

// CountMeals is the metric behind meals_logged achievements.
func (s *MealService) CountMeals(userID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.Meal{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
