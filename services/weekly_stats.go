package services

import (
	"time"

	"github.com/k0marov/nutritioner-backend/models"
	"github.com/k0marov/nutritioner-backend/utils"
)

// BucketCaloriesByDay folds a user's meals into WeekDays per-day totals,
// index 0 = today, index 6 = six days before today. Each bucket matches its
// exact calendar day; a meal on any other date contributes to no bucket.
//
// A day whose total is zero is reported as nil, same as a day with no meals.
// Zero is the no-data sentinel throughout this service, so a genuine all-zero
// day is deliberately indistinguishable from an empty one.
func BucketCaloriesByDay(meals []models.Meal, today time.Time) []*models.NutritionInfo {
	buckets := make([]*models.NutritionInfo, WeekDays)
	for offset := 0; offset < WeekDays; offset++ {
		target := utils.DaysAgo(today, offset)
		var total float64
		for _, meal := range meals {
			if utils.SameDate(meal.CreatedDate, target) {
				total += meal.Calories
			}
		}
		if total != 0 {
			buckets[offset] = &models.NutritionInfo{Calories: total}
		}
	}
	return buckets
}
