package models

// NutritionInfo carries the calorie value for a single meal estimate or for
// one day's aggregate. Two instances with equal Calories are interchangeable.
type NutritionInfo struct {
	Calories float64 `json:"calories"`
}
