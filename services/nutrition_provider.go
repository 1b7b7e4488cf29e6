package services

import (
	"context"
	"errors"

	"github.com/k0marov/nutritioner-backend/models"
)

// WeekDays is the number of day buckets in a weekly summary.
const WeekDays = 7

// ErrEstimationFailed means the upstream estimator judged the input to not be
// food, timed out, or returned something unusable. A zero-calorie estimate is
// reserved as the "could not estimate" sentinel and is never a valid result.
var ErrEstimationFailed = errors.New("calorie estimation failed")

// ErrRecommendationFailed means the upstream model could not produce advice.
var ErrRecommendationFailed = errors.New("recommendation failed")

// NutritionProvider turns free text into a calorie estimate and a week of
// per-day totals into dietary advice.
//
// Recommend receives exactly WeekDays slots ordered today-first; a nil slot
// means no data was logged for that day, which is distinct from a zero total
// and must stay distinct in whatever the provider produces.
type NutritionProvider interface {
	EstimateCalories(ctx context.Context, description string) (models.NutritionInfo, error)
	Recommend(ctx context.Context, pastWeek []*models.NutritionInfo) (string, error)
}
