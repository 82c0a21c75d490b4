package routes

import (
    "github.com/Nemoeiei/calories-guard/controllers"
    "github.com/Nemoeiei/calories-guard/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Protected user routes
    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware())
    {
        user.GET("/profile", controllers.GetProfile)
        user.PUT("/profile", controllers.UpdateProfile)
        user.PUT("/targets", controllers.SetTargets)
        user.GET("/bmi", controllers.GetBMI)
        user.POST("/weight", controllers.LogWeight)
        user.GET("/weight", controllers.WeightHistory)
    }

    foods := r.Group("/foods")
    foods.Use(middlewares.AuthMiddleware())
    {
        foods.POST("", controllers.CreateFood)
        foods.GET("/search", controllers.SearchFoods)
        foods.GET("/:id", controllers.GetFood)
        foods.DELETE("/:id", controllers.DeleteFood)
    }

    meals := r.Group("/meals")
    meals.Use(middlewares.AuthMiddleware())
    {
        meals.POST("/log", controllers.LogMeal)
        meals.GET("", controllers.ListMealsByDate)
        meals.DELETE("/:id", controllers.DeleteMeal)
        meals.DELETE("", controllers.ClearCategory)
    }

    summary := r.Group("/summary")
    summary.Use(middlewares.AuthMiddleware())
    {
        summary.GET("/daily", controllers.GetDailySummary)
        summary.PUT("/water", controllers.SetWater)
        summary.GET("/weekly", controllers.WeeklyReport)
        summary.GET("/monthly", controllers.MonthlyReport)
    }

    gamification := r.Group("/gamification")
    gamification.Use(middlewares.AuthMiddleware())
    {
        gamification.GET("/achievements", controllers.ListAchievements)
        gamification.GET("/my-achievements", controllers.MyAchievements)
        gamification.GET("/stats", controllers.GamificationStats)
        gamification.POST("/record-login", controllers.RecordLogin)
        gamification.POST("/check-achievements", controllers.CheckAchievements)
    }

    ws := r.Group("/ws")
    ws.Use(middlewares.AuthMiddleware())
    {
        ws.GET("", controllers.RealtimeWS)
    }

    return r
}
