package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/k0marov/nutritioner-backend/models"
)

// OpenAIProvider talks to OpenAI or any OpenAI-compatible endpoint
// (LM Studio, gateways) selected through the base URL.
type OpenAIProvider struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIProvider(baseURL, apiKey, model string, timeout time.Duration) (*OpenAIProvider, error) {
	if model == "" {
		return nil, errors.New("openai model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIProvider{
		client:  openai.NewClient(opts...),
		model:   model,
		timeout: timeout,
	}, nil
}

func (p *OpenAIProvider) chat(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) EstimateCalories(ctx context.Context, description string) (models.NutritionInfo, error) {
	content, err := p.chat(ctx, buildEstimatePrompt(description))
	if err != nil {
		return models.NutritionInfo{}, fmt.Errorf("%w: %v", ErrEstimationFailed, err)
	}
	return parseEstimate(content)
}

func (p *OpenAIProvider) Recommend(ctx context.Context, pastWeek []*models.NutritionInfo) (string, error) {
	content, err := p.chat(ctx, buildRecommendPrompt(pastWeek))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecommendationFailed, err)
	}
	return content, nil
}
