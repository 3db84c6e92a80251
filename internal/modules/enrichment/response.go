package enrichment

import (
	"encoding/json"
	"fmt"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
)

// Response is the additive payload returned by the model.
type Response struct {
	EnhancedInsights            []types.UserInsight    `json:"enhancedInsights"`
	PersonalizedRecommendations []types.Recommendation `json:"personalizedRecommendations"`
}

// decodeResponse re-types the generic JSON object. Missing arrays decode as empty.
func decodeResponse(raw map[string]any) (Response, error) {
	var out Response
	if raw == nil {
		return out, fmt.Errorf("empty model response")
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return out, fmt.Errorf("marshal model response: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("decode model response: %w", err)
	}
	return out, nil
}

// merge appends the model's items onto copies of the input arrays; nothing is deduplicated.
func merge(data types.ProcessedUserData, resp Response) types.ProcessedUserData {
	out := data
	out.Insights = make([]types.UserInsight, 0, len(data.Insights)+len(resp.EnhancedInsights))
	out.Insights = append(append(out.Insights, data.Insights...), resp.EnhancedInsights...)
	out.Recommendations = make([]types.Recommendation, 0, len(data.Recommendations)+len(resp.PersonalizedRecommendations))
	out.Recommendations = append(append(out.Recommendations, data.Recommendations...), resp.PersonalizedRecommendations...)
	return out
}
