package services

import (
	"fmt"
	"strings"
	"time"
)

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderFake   = "fake"
)

// ProviderConfig selects and configures a NutritionProvider implementation.
type ProviderConfig struct {
	Provider string

	OllamaURL   string
	OllamaModel string

	OpenAIBaseURL string
	OpenAIKey     string
	OpenAIModel   string

	Timeout time.Duration
}

// NewNutritionProvider builds the provider named by cfg.Provider.
func NewNutritionProvider(cfg ProviderConfig) (NutritionProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderOllama:
		return NewOllamaProvider(cfg.OllamaURL, cfg.OllamaModel, cfg.Timeout)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIKey, cfg.OpenAIModel, cfg.Timeout)
	case ProviderFake:
		return NewFakeNutritionProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported nutrition provider: %s", cfg.Provider)
	}
}
