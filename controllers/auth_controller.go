package controllers

import (
	"net/http"

	"github.com/Nemoeiei/calories-guard/config"
	"github.com/Nemoeiei/calories-guard/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authSvc := services.NewAuthService(config.DB)
	user, err := authSvc.Register(input.Email, input.Password, input.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "user_id": user.ID})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates, touches the activity streak, and evaluates
// achievements so consecutive logins are rewarded right away.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authSvc := services.NewAuthService(config.DB)
	token, user, err := authSvc.Authenticate(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	streakSvc := services.NewStreakService(config.DB)
	touched, err := streakSvc.Touch(user.ID)
	if err != nil {
		config.Log.Warn("streak touch failed", zap.Uint("user_id", user.ID), zap.Error(err))
		touched = user
	}

	achSvc := services.NewAchievementService(config.DB)
	newlyAwarded, err := achSvc.CheckAll(user.ID, touched.CurrentStreak)
	if err != nil {
		config.Log.Warn("achievement check failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"token":          token,
		"current_streak": touched.CurrentStreak,
		"newly_awarded":  newlyAwarded,
	})
}
