package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/k0marov/nutritioner-backend/models"
	"github.com/k0marov/nutritioner-backend/utils"
)

// StorageError is the only error type the repository lets cross its boundary.
// Handlers serialize it as the tagged {"status":"error",...} body.
type StorageError struct {
	Op    string
	Cause string
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Cause
}

// WindowCompare picks how the last-week filter's lower bound is evaluated.
type WindowCompare string

const (
	// CompareDates filters on calendar days, aligned with day bucketing.
	CompareDates WindowCompare = "date"
	// CompareTimestamps keeps the sub-day lower bound (now minus 7 days at
	// time-of-call precision), so a meal can pass the filter yet fall
	// outside every exact-date bucket.
	CompareTimestamps WindowCompare = "timestamp"
)

// MealRepository owns Meal persistence and range queries.
//
// GetMealsForLastWeek returns every meal for the user whose created date lies
// in the inclusive window [today - 7 days, today]. Ordering is unspecified.
// An empty window yields an empty slice, not an error.
type MealRepository interface {
	InsertMeal(ctx context.Context, userID, description string, calories float64, createdDate time.Time) error
	GetMealsForLastWeek(ctx context.Context, userID string) ([]models.Meal, error)
}

// GormMealRepository is the production MealRepository over a gorm pool.
type GormMealRepository struct {
	db      *gorm.DB
	compare WindowCompare
	now     func() time.Time
}

func NewGormMealRepository(db *gorm.DB, compare WindowCompare) *GormMealRepository {
	if compare == "" {
		compare = CompareDates
	}
	return &GormMealRepository{db: db, compare: compare, now: time.Now}
}

func (r *GormMealRepository) InsertMeal(ctx context.Context, userID, description string, calories float64, createdDate time.Time) error {
	meal := models.Meal{
		UserID:      userID,
		Description: description,
		Calories:    calories,
		CreatedDate: createdDate,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&meal).Error
	})
	if err != nil {
		return &StorageError{Op: "insert meal", Cause: err.Error()}
	}
	return nil
}

func (r *GormMealRepository) GetMealsForLastWeek(ctx context.Context, userID string) ([]models.Meal, error) {
	now := r.now()
	cutoff := now.AddDate(0, 0, -7)
	if r.compare == CompareDates {
		cutoff = utils.DateOnly(cutoff)
	}

	var meals []models.Meal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_date >= ? AND created_date <= ?", userID, cutoff, now).
		Find(&meals).Error
	if err != nil {
		return nil, &StorageError{Op: "query meals for last week", Cause: err.Error()}
	}
	return meals, nil
}
