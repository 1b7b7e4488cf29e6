package main

import (
	"log"

	"github.com/k0marov/nutritioner-backend/config"
	"github.com/k0marov/nutritioner-backend/controllers"
	"github.com/k0marov/nutritioner-backend/routes"
	"github.com/k0marov/nutritioner-backend/services"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	provider, err := services.NewNutritionProvider(cfg.ProviderConfig())
	if err != nil {
		log.Fatalf("Failed to create nutrition provider: %v", err)
	}

	repo := services.NewGormMealRepository(db, cfg.WeekWindowCompare)

	r := routes.SetupRouter(
		controllers.NewMealController(provider, repo),
		controllers.NewStatsController(provider, repo),
		cfg.RequestTimeout,
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
