package controllers

import (
	"net/http"
	"strconv"

	"github.com/Nemoeiei/calories-guard/config"
	"github.com/Nemoeiei/calories-guard/models"
	"github.com/Nemoeiei/calories-guard/services"

	"github.com/gin-gonic/gin"
)

type CreateFoodInput struct {
	Name        string  `json:"name" binding:"required"`
	FoodType    string  `json:"food_type"`
	Calories    float64 `json:"calories" binding:"gte=0"`
	Protein     float64 `json:"protein" binding:"gte=0"`
	Carbs       float64 `json:"carbs" binding:"gte=0"`
	Fat         float64 `json:"fat" binding:"gte=0"`
	ServingQty  float64 `json:"serving_qty"`
	ServingUnit string  `json:"serving_unit"`
}

func CreateFood(c *gin.Context) {
	var input CreateFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food := models.Food{
		Name:        input.Name,
		FoodType:    input.FoodType,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		ServingQty:  input.ServingQty,
		ServingUnit: input.ServingUnit,
	}
	foodSvc := services.NewFoodService(config.DB)
	if err := foodSvc.Create(&food); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

func GetFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	foodSvc := services.NewFoodService(config.DB)
	food, err := foodSvc.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func SearchFoods(c *gin.Context) {
	foodSvc := services.NewFoodService(config.DB)
	foods, err := foodSvc.Search(c.Query("q"), 20)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func DeleteFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	foodSvc := services.NewFoodService(config.DB)
	if err := foodSvc.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
}
