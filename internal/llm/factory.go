package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alphaquant/academy/internal/store"
)

// FactoryOption customizes NewProvider.
type FactoryOption func(*factoryOptions)

type factoryOptions struct {
	logger *zap.Logger
	canned Provider
}

// WithLogger routes request-logging failures to l.
func WithLogger(l *zap.Logger) FactoryOption {
	return func(o *factoryOptions) { o.logger = l }
}

// WithCanned supplies the provider used when cfg.Provider is "canned".
func WithCanned(p Provider) FactoryOption {
	return func(o *factoryOptions) { o.canned = p }
}

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, opts ...FactoryOption) (Provider, error) {
	o := factoryOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderCanned:
		if o.canned == nil {
			return nil, fmt.Errorf("canned provider requested but none supplied")
		}
		// Canned answers are local and never fail transiently; log only.
		return WithLogging(o.canned, ProviderCanned, eventRepo, o.logger), nil
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller -> retry -> logging -> base, so every attempt is logged.
	logged := WithLogging(base, cfg.Provider, eventRepo, o.logger)
	return WithRetry(logged, cfg.Retry, RetryTimeout(cfg.Timeout), RetryLogger(o.logger)), nil
}
