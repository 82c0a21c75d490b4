package controllers

import (
	"net/http"
	"time"

	"github.com/Nemoeiei/calories-guard/config"
	"github.com/Nemoeiei/calories-guard/services"
	"github.com/Nemoeiei/calories-guard/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userSvc := services.NewUserService(config.DB)
	user, err := userSvc.EnsureTargets(currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type UpdateProfileInput struct {
	Username        *string    `json:"username"`
	Gender          *string    `json:"gender"`
	BirthDate       *time.Time `json:"birth_date"`
	HeightCm        *float64   `json:"height_cm"`
	CurrentWeightKg *float64   `json:"current_weight_kg"`
	TargetWeightKg  *float64   `json:"target_weight_kg"`
	GoalType        *string    `json:"goal_type"`
	ActivityLevel   *string    `json:"activity_level"`
	GoalStartDate   *time.Time `json:"goal_start_date"`
	GoalTargetDate  *time.Time `json:"goal_target_date"`
}

func UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userSvc := services.NewUserService(config.DB)
	user, err := userSvc.UpdateProfile(currentUserID(c), services.ProfileUpdate{
		Username:        input.Username,
		Gender:          input.Gender,
		BirthDate:       input.BirthDate,
		HeightCm:        input.HeightCm,
		CurrentWeightKg: input.CurrentWeightKg,
		TargetWeightKg:  input.TargetWeightKg,
		GoalType:        input.GoalType,
		ActivityLevel:   input.ActivityLevel,
		GoalStartDate:   input.GoalStartDate,
		GoalTargetDate:  input.GoalTargetDate,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type SetTargetsInput struct {
	Calories int `json:"calories" binding:"required,gt=0"`
	Protein  int `json:"protein" binding:"gte=0"`
	Carbs    int `json:"carbs" binding:"gte=0"`
	Fat      int `json:"fat" binding:"gte=0"`
}

// SetTargets overrides the derived daily targets with explicit values.
func SetTargets(c *gin.Context) {
	var input SetTargetsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userSvc := services.NewUserService(config.DB)
	if err := userSvc.SetTargets(currentUserID(c), input.Calories, input.Protein, input.Carbs, input.Fat); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "targets updated"})
}

func GetBMI(c *gin.Context) {
	userSvc := services.NewUserService(config.DB)
	user, err := userSvc.Get(currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	bmi, err := utils.BMI(user.CurrentWeightKg, user.HeightCm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bmi": bmi, "category": utils.BMICategory(bmi)})
}

type LogWeightInput struct {
	WeightKg     float64    `json:"weight_kg" binding:"required,gt=0"`
	RecordedDate *time.Time `json:"recorded_date"`
}

func LogWeight(c *gin.Context) {
	var input LogWeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recorded := time.Time{}
	if input.RecordedDate != nil {
		recorded = *input.RecordedDate
	}

	userSvc := services.NewUserService(config.DB)
	log, err := userSvc.LogWeight(currentUserID(c), input.WeightKg, recorded)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func WeightHistory(c *gin.Context) {
	userSvc := services.NewUserService(config.DB)
	logs, err := userSvc.WeightHistory(currentUserID(c), 30)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
