package llm

import "strings"

// ModelCost is a model's list price in USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1e6
}

// LookupCost prices a model ID as logged by any provider, or returns nil.
// OpenRouter IDs ("openai/gpt-4o-mini") are priced as the vendor model, and
// their ":free" variants cost nothing.
func LookupCost(modelID string) *ModelCost {
	id := modelID
	if _, after, ok := strings.Cut(id, "/"); ok {
		id = after
	}
	if base, ok := strings.CutSuffix(id, ":free"); ok && base != "" {
		return &ModelCost{}
	}
	if c, ok := modelCosts[id]; ok {
		return &c
	}
	return nil
}

var modelCosts = map[string]ModelCost{
	ProviderCanned: {},

	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-20250514":  {3, 15},
	"claude-sonnet-4-5":         {3, 15},
	"claude-3-haiku":            {0.25, 1.25},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1-mini": {0.4, 1.6},

	"gemini-2.0-flash":     {0.1, 0.4},
	"gemini-2.0-flash-exp": {0.1, 0.4},
	"gemini-2.0-pro":       {1.25, 10},
	"gemini-2.5-flash":     {0.3, 2.5},
}
