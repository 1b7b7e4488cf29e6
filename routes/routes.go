package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/k0marov/nutritioner-backend/controllers"
	"github.com/k0marov/nutritioner-backend/middlewares"
)

func SetupRouter(
	mealCtrl *controllers.MealController,
	statsCtrl *controllers.StatsController,
	requestTimeout time.Duration,
) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.Timeout(requestTimeout))

	api := r.Group("/api/v1")
	{
		api.POST("/meals", mealCtrl.CreateMeal)
		api.GET("/stats", statsCtrl.GetWeeklyStats)
	}

	// Unknown paths and methods answer 404 with an empty body.
	r.NoRoute(func(c *gin.Context) { c.AbortWithStatus(http.StatusNotFound) })
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) { c.AbortWithStatus(http.StatusNotFound) })

	return r
}
