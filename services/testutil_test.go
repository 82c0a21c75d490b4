package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Nemoeiei/calories-guard/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Meal{},
		&models.MealItem{},
		&models.DailySummary{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.WeightLog{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	birth := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)
	user := &models.User{
		Email:           fmt.Sprintf("user%d@example.com", testDBSeq),
		PasswordHash:    "x",
		Username:        "tester",
		Gender:          "male",
		BirthDate:       &birth,
		HeightCm:        175,
		CurrentWeightKg: 70,
		TargetWeightKg:  68,
		GoalType:        models.GoalLoseWeight,
		ActivityLevel:   models.ActivityModeratelyActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedFood(t *testing.T, db *gorm.DB, name string, cal, protein, carbs, fat float64) *models.Food {
	t.Helper()

	food := &models.Food{
		Name:     name,
		Calories: cal,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
	require.NoError(t, db.Create(food).Error)
	return food
}
