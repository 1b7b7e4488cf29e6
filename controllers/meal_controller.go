package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/k0marov/nutritioner-backend/services"
)

const createdDateLayout = "2006-01-02"

type MealController struct {
	provider services.NutritionProvider
	repo     services.MealRepository
}

func NewMealController(provider services.NutritionProvider, repo services.MealRepository) *MealController {
	return &MealController{provider: provider, repo: repo}
}

// CreateMeal estimates calories for a described meal and persists it.
func (mc *MealController) CreateMeal(c *gin.Context) {
	var body struct {
		UserID      string `json:"user_id"`
		Description string `json:"description"`
		CreatedDate string `json:"created_date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request, missing user_id or description"})
		return
	}
	if body.UserID == "" || body.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request, missing user_id or description"})
		return
	}

	createdDate := time.Now()
	if body.CreatedDate != "" {
		parsed, err := time.Parse(createdDateLayout, body.CreatedDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid created_date, expected YYYY-MM-DD"})
			return
		}
		createdDate = parsed
	}

	info, err := mc.provider.EstimateCalories(c.Request.Context(), body.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Server did not recognize the request.",
			"details": err.Error(),
		})
		return
	}

	if err := mc.repo.InsertMeal(c.Request.Context(), body.UserID, body.Description, info.Calories, createdDate); err != nil {
		var se *services.StorageError
		if errors.As(err, &se) {
			c.JSON(http.StatusInternalServerError, storageErrorBody(se))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "insert meal", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"calories": info.Calories})
}
