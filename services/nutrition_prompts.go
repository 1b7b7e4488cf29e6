package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/k0marov/nutritioner-backend/models"
)

const estimatePrompt = `You are a smart diet app.
The user gives you a description of their meal and you reply with the amount of
kilocalories, proteins, carbohydrates and fats that this meal had.
Use your knowledge about nutrition in food.
Return ONLY JSON with this format:
{"kilocalories": int, "proteins": int, "carbs": int, "fats": int}.
You can give a reasonable average estimate. If there is some real error
(like if the provided meal is not food), place 0 for kilocalories.
"kilocalories" must be an integer number, not a string.
Meal description: %q`

const recommendPrompt = `You are a dietologist.
Provide recommendations for a client who entered some data into a nutrition app.
This client is an adult of normal weight with no weight-loss goal; they just
want to maintain it. If they consume fewer calories than needed for normal
life, tell them about it. If they consume more, also tell them. Give not only
general advice but also advice for specific days, if those differ from the
others very much. Answer in no more than 150 words, no preface, no general
words, only specific recommendations.

Below is the past kilocalorie intake per day, from today backwards. "no data"
means nothing was logged for that day; ignore such days.
%s`

type estimateResponse struct {
	Kilocalories float64 `json:"kilocalories"`
	Proteins     float64 `json:"proteins"`
	Carbs        float64 `json:"carbs"`
	Fats         float64 `json:"fats"`
}

func buildEstimatePrompt(description string) string {
	return fmt.Sprintf(estimatePrompt, description)
}

func buildRecommendPrompt(pastWeek []*models.NutritionInfo) string {
	var sb strings.Builder
	for day, info := range pastWeek {
		label := "today"
		switch day {
		case 0:
		case 1:
			label = "1 day ago"
		default:
			label = fmt.Sprintf("%d days ago", day)
		}
		if info == nil {
			fmt.Fprintf(&sb, "- %s: no data\n", label)
		} else {
			fmt.Fprintf(&sb, "- %s: %.0f kcal\n", label, info.Calories)
		}
	}
	return fmt.Sprintf(recommendPrompt, sb.String())
}

// parseEstimate extracts the calorie count from a model reply. Zero is the
// model's "not food" sentinel and maps to ErrEstimationFailed.
func parseEstimate(content string) (models.NutritionInfo, error) {
	var resp estimateResponse
	if err := json.Unmarshal([]byte(extractJSON(content)), &resp); err != nil {
		return models.NutritionInfo{}, fmt.Errorf("%w: malformed model reply: %v", ErrEstimationFailed, err)
	}
	if resp.Kilocalories <= 0 {
		return models.NutritionInfo{}, fmt.Errorf("%w: description was not recognized as food", ErrEstimationFailed)
	}
	return models.NutritionInfo{Calories: resp.Kilocalories}, nil
}

// extractJSON strips markdown fences and surrounding prose so that replies
// like "```json\n{...}\n```" still parse.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			return content[start : end+1]
		}
	}
	return content
}
