package controllers

import (
	"net/http"

	"github.com/Nemoeiei/calories-guard/config"
	"github.com/Nemoeiei/calories-guard/services"

	"github.com/gin-gonic/gin"
)

func newSummaryService() *services.SummaryService {
	return services.NewSummaryService(config.DB, services.NewUserService(config.DB))
}

func GetDailySummary(c *gin.Context) {
	date, err := dateParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return
	}

	summary, err := newSummaryService().GetOrCreate(currentUserID(c), date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type WaterInput struct {
	Glasses int `json:"glasses" binding:"gte=0"`
}

func SetWater(c *gin.Context) {
	date, err := dateParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return
	}
	var input WaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := newSummaryService().SetWaterGlasses(currentUserID(c), date, input.Glasses)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func WeeklyReport(c *gin.Context) {
	date, err := dateParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return
	}

	reportSvc := services.NewReportService(newSummaryService())
	report, err := reportSvc.Weekly(currentUserID(c), date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func MonthlyReport(c *gin.Context) {
	date, err := dateParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return
	}

	reportSvc := services.NewReportService(newSummaryService())
	report, err := reportSvc.Monthly(currentUserID(c), date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
