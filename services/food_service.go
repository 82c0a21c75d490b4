package services

import (
	"errors"
	"fmt"

	"github.com/Nemoeiei/calories-guard/models"
	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// Get returns the catalog entry the engine should snapshot from.
// Soft-deleted rows are invisible here: logging against a retired food
// is a NotFound, while already-logged snapshots keep their copied values.
func (s *FoodService) Get(foodID uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food %d: %w", foodID, ErrNotFound)
		}
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Create(food *models.Food) error {
	if food.Name == "" {
		return fmt.Errorf("food name required: %w", ErrInvalidInput)
	}
	return s.db.Create(food).Error
}

func (s *FoodService) Search(query string, limit int) ([]models.Food, error) {
	if limit <= 0 {
		limit = 20
	}
	var foods []models.Food
	err := s.db.
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(limit).
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) Delete(foodID uint) error {
	res := s.db.Delete(&models.Food{}, foodID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("food %d: %w", foodID, ErrNotFound)
	}
	return nil
}
