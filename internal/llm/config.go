package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "canned", "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout is the maximum duration for a single LLM request
	// (including retries). Default: 30s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string
	Model   string // Default: "claude-haiku"
	BaseURL string // Optional. Proxy or gateway in front of the API.
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenRouter or compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string
	Model   string // Default: "gemini-flash"
	BaseURL string // Optional.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// ProviderCanned answers from built-in rules without any network access.
const ProviderCanned = "canned"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderCanned,
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// endpoint points at the credential fields of one network provider.
type endpoint struct {
	name                   string
	discoverEnv            string // vendor's own key variable
	apiKey, model, baseURL *string
}

// endpoints lists the network providers in discovery priority order.
func (c *Config) endpoints() []endpoint {
	return []endpoint{
		{"gemini", "GEMINI_API_KEY", &c.Gemini.APIKey, &c.Gemini.Model, &c.Gemini.BaseURL},
		{"openai", "OPENAI_API_KEY", &c.OpenAI.APIKey, &c.OpenAI.Model, &c.OpenAI.BaseURL},
		{"anthropic", "ANTHROPIC_API_KEY", &c.Anthropic.APIKey, &c.Anthropic.Model, &c.Anthropic.BaseURL},
		{"openrouter", "OPENROUTER_API_KEY", &c.OpenRouter.APIKey, &c.OpenRouter.Model, &c.OpenRouter.BaseURL},
	}
}

func envPrefix(name string) string { return "AQA_" + strings.ToUpper(name) + "_" }

// ConfigFromEnv layers AQA_* variables over DefaultConfig: AQA_LLM_PROVIDER,
// AQA_LLM_TIMEOUT and AQA_<VENDOR>_{API_KEY,MODEL,BASE_URL} for each vendor.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	setFromEnv(&cfg.Provider, "AQA_LLM_PROVIDER")
	if v := os.Getenv("AQA_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	for _, ep := range cfg.endpoints() {
		prefix := envPrefix(ep.name)
		setFromEnv(ep.apiKey, prefix+"API_KEY")
		setFromEnv(ep.model, prefix+"MODEL")
		setFromEnv(ep.baseURL, prefix+"BASE_URL")
	}
	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig picks the first vendor whose standard key variable
// (GEMINI_API_KEY, OPENAI_API_KEY, ...) is set. It reports false when none
// is.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, ep := range cfg.endpoints() {
		if k := os.Getenv(ep.discoverEnv); k != "" {
			cfg.Provider = ep.name
			*ep.apiKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider is known and, for network
// providers, has an API key.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderCanned, "mock":
		return nil
	}
	for _, ep := range c.endpoints() {
		if ep.name != c.Provider {
			continue
		}
		if *ep.apiKey == "" {
			return fmt.Errorf("%sAPI_KEY is required for the %s provider", envPrefix(ep.name), ep.name)
		}
		return nil
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
