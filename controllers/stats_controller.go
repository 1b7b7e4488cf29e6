package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/k0marov/nutritioner-backend/services"
)

type StatsController struct {
	provider services.NutritionProvider
	repo     services.MealRepository
	now      func() time.Time
}

func NewStatsController(provider services.NutritionProvider, repo services.MealRepository) *StatsController {
	return &StatsController{provider: provider, repo: repo, now: time.Now}
}

// GetWeeklyStats buckets the user's trailing week into per-day totals and
// turns them into natural-language recommendations.
func (sc *StatsController) GetWeeklyStats(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id parameter"})
		return
	}

	meals, err := sc.repo.GetMealsForLastWeek(c.Request.Context(), userID)
	if err != nil {
		var se *services.StorageError
		if errors.As(err, &se) {
			c.JSON(http.StatusInternalServerError, storageErrorBody(se))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "query meals for last week", "details": err.Error()})
		return
	}

	// No data is a distinct outcome from a populated-but-boring week.
	if len(meals) == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	buckets := services.BucketCaloriesByDay(meals, sc.now())

	recommendations, err := sc.provider.Recommend(c.Request.Context(), buckets)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error fetching recommendations",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
