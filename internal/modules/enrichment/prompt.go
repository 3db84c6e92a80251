package enrichment

import "fmt"

const SchemaName = "wellbeing_enrichment"

const SystemPrompt = `You are an AI health assistant specialized in analyzing mental health data patterns.
Your task is to analyze the user's data and provide personalized insights and recommendations.
Be empathetic and considerate of the user's wellbeing.
Format your response as JSON with the following structure:
{
  "enhancedInsights": [
    {
      "type": "observation|pattern|anomaly",
      "description": "Concise and personalized insight description",
      "confidence": <number between 0-1>,
      "relatedMetrics": ["relevant_metric_1", "relevant_metric_2"]
    }
  ],
  "personalizedRecommendations": [
    {
      "category": "activity|sleep|screen|social|location",
      "description": "Specific and actionable recommendation",
      "expectedImpact": <number between 0-1>,
      "confidence": <number between 0-1>
    }
  ]
}`

const userPromptTemplate = `Here is a summary of a user's mental health data:
%s

Based on this data, please provide:
1. Enhanced insights that are personalized and detailed
2. Personalized recommendations that are specific, actionable, and tailored to this user's patterns

Your analysis should focus on finding connections between their behaviors and stress levels, and suggest personalized interventions.`

func UserPrompt(summary string) string {
	return fmt.Sprintf(userPromptTemplate, summary)
}

func enumSchema(values ...string) map[string]any {
	return map[string]any{"type": "string", "enum": values}
}

// ResponseSchema is the strict structured-output schema: every object closes
// additionalProperties and requires all of its keys.
func ResponseSchema() map[string]any {
	insight := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type":           enumSchema("observation", "pattern", "anomaly"),
			"description":    map[string]any{"type": "string"},
			"confidence":     map[string]any{"type": "number"},
			"relatedMetrics": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required":             []string{"type", "description", "confidence", "relatedMetrics"},
		"additionalProperties": false,
	}
	recommendation := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category":       enumSchema("activity", "sleep", "screen", "social", "location"),
			"description":    map[string]any{"type": "string"},
			"expectedImpact": map[string]any{"type": "number"},
			"confidence":     map[string]any{"type": "number"},
		},
		"required":             []string{"category", "description", "expectedImpact", "confidence"},
		"additionalProperties": false,
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"enhancedInsights":            map[string]any{"type": "array", "items": insight},
			"personalizedRecommendations": map[string]any{"type": "array", "items": recommendation},
		},
		"required":             []string{"enhancedInsights", "personalizedRecommendations"},
		"additionalProperties": false,
	}
}
