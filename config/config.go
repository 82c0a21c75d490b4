package config

import (
	"fmt"
	"os"

	"github.com/Nemoeiei/calories-guard/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB  *gorm.DB
	Log *zap.Logger
)

func InitLogger() {
	var err error
	if os.Getenv("APP_ENV") == "production" {
		Log, err = zap.NewProduction()
	} else {
		Log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}
}

func InitDB() {
	if err := godotenv.Load(); err != nil {
		Log.Warn("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		Log.Fatal("failed to connect to database", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Meal{},
		&models.MealItem{},
		&models.DailySummary{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.WeightLog{},
	)
	if err != nil {
		Log.Fatal("automigrate failed", zap.Error(err))
	}

	seedAchievements()
}

// seedAchievements fills the catalog on an empty database so evaluators
// have something to award. Admin tooling manages the catalog after that.
func seedAchievements() {
	defaults := []models.Achievement{
		{Name: "First Bite", Description: "Log your first meal", CriteriaType: models.CriteriaMealsLogged, CriteriaValue: 1},
		{Name: "Meal Historian", Description: "Log 50 meals", CriteriaType: models.CriteriaMealsLogged, CriteriaValue: 50},
		{Name: "Warming Up", Description: "3-day activity streak", CriteriaType: models.CriteriaStreak, CriteriaValue: 3},
		{Name: "Habit Formed", Description: "21-day activity streak", CriteriaType: models.CriteriaStreak, CriteriaValue: 21},
		{Name: "On Target", Description: "Meet your calorie goal for 7 days", CriteriaType: models.CriteriaGoalMetDays, CriteriaValue: 7},
		{Name: "Lighter Already", Description: "Lose 2 kg", CriteriaType: models.CriteriaWeightLoss, CriteriaValue: 2},
	}
	for _, a := range defaults {
		DB.Where("name = ?", a.Name).FirstOrCreate(&a)
	}
}
