package controllers

import (
	"net/http"

	"github.com/Nemoeiei/calories-guard/config"
	"github.com/Nemoeiei/calories-guard/services"

	"github.com/gin-gonic/gin"
)

func ListAchievements(c *gin.Context) {
	achSvc := services.NewAchievementService(config.DB)
	achievements, err := achSvc.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, achievements)
}

func MyAchievements(c *gin.Context) {
	achSvc := services.NewAchievementService(config.DB)
	earned, err := achSvc.UserAchievements(currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, earned)
}

func GamificationStats(c *gin.Context) {
	achSvc := services.NewAchievementService(config.DB)
	stats, err := achSvc.Stats(currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RecordLogin touches the streak without going through /auth/login again,
// for clients that keep a long-lived token.
func RecordLogin(c *gin.Context) {
	userID := currentUserID(c)

	streakSvc := services.NewStreakService(config.DB)
	user, err := streakSvc.Touch(userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current_streak":      user.CurrentStreak,
		"last_activity_date":  user.LastActivityDate,
		"total_activity_days": user.TotalActivityDays,
	})
}

// CheckAchievements evaluates every criteria type and reports what was
// newly awarded on this pass.
func CheckAchievements(c *gin.Context) {
	userID := currentUserID(c)

	userSvc := services.NewUserService(config.DB)
	user, err := userSvc.Get(userID)
	if err != nil {
		fail(c, err)
		return
	}

	achSvc := services.NewAchievementService(config.DB)
	awarded, err := achSvc.CheckAll(userID, user.CurrentStreak)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "achievements checked",
		"newly_awarded": len(awarded),
		"awards":        awarded,
	})
}
