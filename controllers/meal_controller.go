package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Nemoeiei/calories-guard/config"
	"github.com/Nemoeiei/calories-guard/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newMealService() *services.MealService {
	userSvc := services.NewUserService(config.DB)
	summarySvc := services.NewSummaryService(config.DB, userSvc)
	foodSvc := services.NewFoodService(config.DB)
	return services.NewMealService(config.DB, foodSvc, summarySvc)
}

type LogMealInput struct {
	Type  string                     `json:"type" binding:"required"`
	AteAt *time.Time                 `json:"ate_at"`
	Items []services.MealItemRequest `json:"items" binding:"required,min=1,dive"`
}

func LogMeal(c *gin.Context) {
	var input LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ateAt := time.Time{}
	if input.AteAt != nil {
		ateAt = *input.AteAt
	}

	userID := currentUserID(c)
	meal, err := newMealService().LogMeal(userID, input.Type, ateAt, input.Items)
	if err != nil {
		fail(c, err)
		return
	}

	// Logging counts toward streak and achievements.
	streakSvc := services.NewStreakService(config.DB)
	touched, err := streakSvc.Touch(userID)
	if err != nil {
		config.Log.Warn("streak touch failed", zap.Uint("user_id", userID), zap.Error(err))
	} else {
		achSvc := services.NewAchievementService(config.DB)
		if _, err := achSvc.CheckAll(userID, touched.CurrentStreak); err != nil {
			config.Log.Warn("achievement check failed", zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, meal)
}

func ListMealsByDate(c *gin.Context) {
	date, err := dateParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return
	}

	meals, err := newMealService().MealsByDate(currentUserID(c), date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func DeleteMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	existed, err := newMealService().DeleteMeal(currentUserID(c), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

func ClearCategory(c *gin.Context) {
	date, err := dateParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return
	}
	mealType := c.Query("type")
	if mealType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type query parameter required"})
		return
	}

	if err := newMealService().ClearCategory(currentUserID(c), date, mealType); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category cleared"})
}
