// Package config loads the academy's YAML configuration file and applies
// environment overrides on top of it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alphaquant/academy/internal/llm"
	"github.com/alphaquant/academy/internal/simulation"
)

// Config holds all aqa configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Logging    LoggingConfig    `yaml:"logging"`
	LLM        LLMConfig        `yaml:"llm"`
	Market     MarketConfig     `yaml:"market"`
	Simulation SimulationConfig `yaml:"simulation"`
	UI         UIConfig         `yaml:"ui"`
}

// DatabaseConfig locates the SQLite file. Empty means the default path.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty means the default state path
}

// LLMConfig configures the assistant's model backend.
type LLMConfig struct {
	Provider   string         `yaml:"provider"` // canned, anthropic, openai, gemini, openrouter
	Timeout    string         `yaml:"timeout"`
	Anthropic  ProviderConfig `yaml:"anthropic"`
	OpenAI     ProviderConfig `yaml:"openai"`
	Gemini     ProviderConfig `yaml:"gemini"`
	OpenRouter ProviderConfig `yaml:"openrouter"`
}

// ProviderConfig holds credentials for a single provider.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// MarketConfig configures the simulated ticker.
type MarketConfig struct {
	Interval string `yaml:"interval"`
	Paused   bool   `yaml:"paused"`
}

// SimulationConfig configures the analyst backtest timer.
type SimulationConfig struct {
	Step        int    `yaml:"step"`
	Tick        string `yaml:"tick"`
	SettleDelay string `yaml:"settle_delay"`
}

// UIConfig holds TUI preferences that are not stored in the database.
type UIConfig struct {
	Splash bool `yaml:"splash"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	llmDefaults := llm.DefaultConfig()
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		LLM: LLMConfig{
			Provider:   llmDefaults.Provider,
			Timeout:    llmDefaults.Timeout.String(),
			Anthropic:  ProviderConfig{Model: llmDefaults.Anthropic.Model},
			OpenAI:     ProviderConfig{Model: llmDefaults.OpenAI.Model},
			Gemini:     ProviderConfig{Model: llmDefaults.Gemini.Model},
			OpenRouter: ProviderConfig{Model: llmDefaults.OpenRouter.Model},
		},
		Market: MarketConfig{Interval: "3s"},
		Simulation: SimulationConfig{
			Step:        simulation.DefaultStep,
			Tick:        simulation.DefaultTick.String(),
			SettleDelay: simulation.DefaultSettleDelay.String(),
		},
		UI: UIConfig{Splash: true},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	// API keys may be present; keep the file private.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets AQA_* variables override file values, then falls
// back to the vendors' standard key variables when no key is configured.
func (c *Config) applyEnvOverrides() {
	env := llm.ConfigFromEnv()

	if v := os.Getenv("AQA_DB"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("AQA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if os.Getenv("AQA_LLM_PROVIDER") != "" {
		c.LLM.Provider = env.Provider
	}

	override := func(dst *ProviderConfig, vendor, key, model, baseURL string) {
		if os.Getenv("AQA_"+vendor+"_API_KEY") != "" {
			dst.APIKey = key
		}
		if os.Getenv("AQA_"+vendor+"_MODEL") != "" {
			dst.Model = model
		}
		if baseURL != "" {
			dst.BaseURL = baseURL
		}
	}
	override(&c.LLM.Anthropic, "ANTHROPIC", env.Anthropic.APIKey, env.Anthropic.Model, env.Anthropic.BaseURL)
	override(&c.LLM.OpenAI, "OPENAI", env.OpenAI.APIKey, env.OpenAI.Model, env.OpenAI.BaseURL)
	override(&c.LLM.Gemini, "GEMINI", env.Gemini.APIKey, env.Gemini.Model, env.Gemini.BaseURL)
	override(&c.LLM.OpenRouter, "OPENROUTER", env.OpenRouter.APIKey, env.OpenRouter.Model, env.OpenRouter.BaseURL)

	// With no provider chosen beyond the default, adopt the first vendor
	// key found in the environment.
	if c.LLM.Provider == llm.ProviderCanned && !c.hasAnyKey() {
		if found, ok := llm.DiscoverConfig(); ok {
			c.LLM.Provider = found.Provider
			c.LLM.Anthropic.APIKey = found.Anthropic.APIKey
			c.LLM.OpenAI.APIKey = found.OpenAI.APIKey
			c.LLM.Gemini.APIKey = found.Gemini.APIKey
			c.LLM.OpenRouter.APIKey = found.OpenRouter.APIKey
		}
	}
}

func (c *Config) hasAnyKey() bool {
	return c.LLM.Anthropic.APIKey != "" || c.LLM.OpenAI.APIKey != "" ||
		c.LLM.Gemini.APIKey != "" || c.LLM.OpenRouter.APIKey != ""
}

// LLMSettings converts the file configuration into provider settings.
func (c *Config) LLMSettings() (llm.Config, error) {
	out := llm.DefaultConfig()
	out.Provider = c.LLM.Provider
	out.Anthropic = llm.AnthropicConfig{APIKey: c.LLM.Anthropic.APIKey, Model: orDefault(c.LLM.Anthropic.Model, out.Anthropic.Model), BaseURL: c.LLM.Anthropic.BaseURL}
	out.OpenAI = llm.OpenAIConfig{APIKey: c.LLM.OpenAI.APIKey, Model: orDefault(c.LLM.OpenAI.Model, out.OpenAI.Model), BaseURL: c.LLM.OpenAI.BaseURL}
	out.Gemini = llm.GeminiConfig{APIKey: c.LLM.Gemini.APIKey, Model: orDefault(c.LLM.Gemini.Model, out.Gemini.Model), BaseURL: c.LLM.Gemini.BaseURL}
	out.OpenRouter = llm.OpenRouterConfig{APIKey: c.LLM.OpenRouter.APIKey, Model: orDefault(c.LLM.OpenRouter.Model, out.OpenRouter.Model), BaseURL: c.LLM.OpenRouter.BaseURL}

	if c.LLM.Timeout != "" {
		d, err := time.ParseDuration(c.LLM.Timeout)
		if err != nil {
			return llm.Config{}, fmt.Errorf("llm.timeout: %w", err)
		}
		out.Timeout = d
	}
	if err := out.Validate(); err != nil {
		return llm.Config{}, err
	}
	return out, nil
}

// SimulationSettings converts the simulation section into runner timing.
func (c *Config) SimulationSettings() (simulation.Config, error) {
	out := simulation.DefaultConfig()
	if c.Simulation.Step > 0 {
		out.Step = c.Simulation.Step
	}
	var err error
	if out.Tick, err = parseDuration("simulation.tick", c.Simulation.Tick, out.Tick); err != nil {
		return simulation.Config{}, err
	}
	if out.SettleDelay, err = parseDuration("simulation.settle_delay", c.Simulation.SettleDelay, out.SettleDelay); err != nil {
		return simulation.Config{}, err
	}
	return out, nil
}

// MarketInterval returns the ticker update interval.
func (c *Config) MarketInterval() (time.Duration, error) {
	d, err := parseDuration("market.interval", c.Market.Interval, 3*time.Second)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("market.interval must be positive, got %s", d)
	}
	return d, nil
}

func parseDuration(field, s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
