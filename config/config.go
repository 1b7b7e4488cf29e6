package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/k0marov/nutritioner-backend/models"
	"github.com/k0marov/nutritioner-backend/services"
)

type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	Provider      string
	OllamaURL     string
	OllamaModel   string
	OpenAIBaseURL string
	OpenAIKey     string
	OpenAIModel   string

	// ProviderTimeout bounds each estimation/recommendation call;
	// RequestTimeout bounds the whole request.
	ProviderTimeout time.Duration
	RequestTimeout  time.Duration

	// WeekWindowCompare picks the last-week filter's boundary semantics:
	// "date" (calendar days, aligned with bucketing) or "timestamp"
	// (sub-day lower bound).
	WeekWindowCompare services.WindowCompare
}

// Load reads .env (when present) and the environment.
func Load() *Config {
	// .env is a convenience for local runs; absent in containers.
	_ = godotenv.Load()

	return &Config{
		Port: getenv("PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getenv("DB_PORT", "5432"),

		Provider:      getenv("PROVIDER", services.ProviderOllama),
		OllamaURL:     getenv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:   os.Getenv("OLLAMA_MODEL"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),

		ProviderTimeout: getduration("PROVIDER_TIMEOUT", 30*time.Second),
		RequestTimeout:  getduration("REQUEST_TIMEOUT", 60*time.Second),

		WeekWindowCompare: services.WindowCompare(getenv("WEEK_WINDOW_COMPARE", string(services.CompareDates))),
	}
}

func (c *Config) ProviderConfig() services.ProviderConfig {
	return services.ProviderConfig{
		Provider:      c.Provider,
		OllamaURL:     c.OllamaURL,
		OllamaModel:   c.OllamaModel,
		OpenAIBaseURL: c.OpenAIBaseURL,
		OpenAIKey:     c.OpenAIKey,
		OpenAIModel:   c.OpenAIModel,
		Timeout:       c.ProviderTimeout,
	}
}

// NewDB opens the Postgres pool and migrates the schema. The pool is returned
// to the caller for explicit injection; there is no package-level handle.
func NewDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Meal{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
