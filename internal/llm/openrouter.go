package llm

import (
	"fmt"
	"net/http"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// OpenRouter attributes traffic to an app by these two headers.
	openRouterReferer = "https://github.com/mangeshraut712/alpha-quant-academy"
	openRouterTitle   = "Alpha Quant Academy"
)

// OpenRouterProvider is an OpenAIProvider pointed at OpenRouter, which
// speaks the OpenAI chat API. Model IDs are vendor-prefixed
// ("google/gemini-2.0-flash-exp") and passed through unchanged.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	headers := http.Header{}
	headers.Set("HTTP-Referer", openRouterReferer)
	headers.Set("X-Title", openRouterTitle)

	inner := newOpenAIProvider(OpenAIConfig{APIKey: cfg.APIKey, BaseURL: baseURL}, cfg.Model, headers)
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
