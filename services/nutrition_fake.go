package services

import (
	"context"

	"github.com/k0marov/nutritioner-backend/models"
)

const (
	fakeCalories = 500.0
	fakeAdvice   = "You should eat less."
)

// FakeNutritionProvider returns a fixed estimate and fixed advice. Useful for
// tests and for running the service without a model endpoint.
type FakeNutritionProvider struct{}

func NewFakeNutritionProvider() *FakeNutritionProvider {
	return &FakeNutritionProvider{}
}

func (p *FakeNutritionProvider) EstimateCalories(ctx context.Context, description string) (models.NutritionInfo, error) {
	return models.NutritionInfo{Calories: fakeCalories}, nil
}

func (p *FakeNutritionProvider) Recommend(ctx context.Context, pastWeek []*models.NutritionInfo) (string, error) {
	return fakeAdvice, nil
}
