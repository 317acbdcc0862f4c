package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load consults so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"AQA_DB", "AQA_LOG_LEVEL", "AQA_LLM_PROVIDER",
		"AQA_ANTHROPIC_API_KEY", "AQA_ANTHROPIC_MODEL",
		"AQA_OPENAI_API_KEY", "AQA_OPENAI_MODEL", "AQA_OPENAI_BASE_URL",
		"AQA_GEMINI_API_KEY", "AQA_GEMINI_MODEL",
		"AQA_OPENROUTER_API_KEY", "AQA_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "canned", cfg.LLM.Provider)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.UI.Splash)

	interval, err := cfg.MarketInterval()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, interval)

	sim, err := cfg.SimulationSettings()
	require.NoError(t, err)
	assert.Equal(t, 5, sim.Step)
	assert.Equal(t, 100*time.Millisecond, sim.Tick)
	assert.Equal(t, 2*time.Second, sim.SettleDelay)
}

func TestLoad_ParsesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  path: /tmp/aqa-test.db
logging:
  level: debug
llm:
  provider: openai
  openai:
    api_key: sk-file
market:
  interval: 500ms
simulation:
  tick: 10ms
ui:
  splash: false
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/aqa-test.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.UI.Splash)

	llmCfg, err := cfg.LLMSettings()
	require.NoError(t, err)
	assert.Equal(t, "openai", llmCfg.Provider)
	assert.Equal(t, "sk-file", llmCfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", llmCfg.OpenAI.Model, "unset model keeps default")

	sim, err := cfg.SimulationSettings()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, sim.Tick)
	assert.Equal(t, 2*time.Second, sim.SettleDelay)

	interval, err := cfg.MarketInterval()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, interval)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [unclosed"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("AQA_LLM_PROVIDER", "anthropic")
	t.Setenv("AQA_ANTHROPIC_API_KEY", "sk-ant-env")
	t.Setenv("AQA_DB", "/tmp/env.db")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  provider: openai\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-ant-env", cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, "/tmp/env.db", cfg.Database.Path)
}

func TestLoad_DiscoversVendorKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-discovered")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-discovered", cfg.LLM.OpenAI.APIKey)
}

func TestLLMSettings_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Provider = "gemini"
	_, err := cfg.LLMSettings()
	assert.Error(t, err)
}

func TestBadDurations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Market.Interval = "soon"
	_, err := cfg.MarketInterval()
	assert.Error(t, err)

	cfg.Market.Interval = "0s"
	_, err = cfg.MarketInterval()
	assert.Error(t, err)

	cfg.Simulation.Tick = "fast"
	_, err = cfg.SimulationSettings()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Logging.Level = "warn"
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", loaded.Logging.Level)
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")
	assert.Equal(t, "/xdg/config/aqa/config.yaml", DefaultPath())
	assert.Equal(t, "/xdg/state/aqa/aqa.log", DefaultLogPath())
}
