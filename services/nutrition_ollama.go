package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/schema"

	"github.com/k0marov/nutritioner-backend/models"
)

// OllamaProvider estimates calories and produces recommendations through a
// local Ollama instance.
type OllamaProvider struct {
	llm     *ollama.LLM
	model   string
	timeout time.Duration
}

func NewOllamaProvider(baseURL, model string, timeout time.Duration) (*OllamaProvider, error) {
	if model == "" {
		return nil, errors.New("ollama model is required")
	}
	llm, err := ollama.New(
		ollama.WithServerURL(baseURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ollama client: %w", err)
	}
	return &OllamaProvider{llm: llm, model: model, timeout: timeout}, nil
}

func (p *OllamaProvider) EstimateCalories(ctx context.Context, description string) (models.NutritionInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.llm.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, buildEstimatePrompt(description))},
		llms.WithModel(p.model),
		llms.WithJSONMode(),
	)
	if err != nil {
		return models.NutritionInfo{}, fmt.Errorf("%w: %v", ErrEstimationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return models.NutritionInfo{}, fmt.Errorf("%w: no response choices returned", ErrEstimationFailed)
	}
	return parseEstimate(resp.Choices[0].Content)
}

func (p *OllamaProvider) Recommend(ctx context.Context, pastWeek []*models.NutritionInfo) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.llm.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, buildRecommendPrompt(pastWeek))},
		llms.WithModel(p.model),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecommendationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response choices returned", ErrRecommendationFailed)
	}
	return resp.Choices[0].Content, nil
}
