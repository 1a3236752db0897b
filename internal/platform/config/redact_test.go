package config_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/documenter/internal/platform/config"
)

func TestSanitizeForLogging_RedactsKey(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	got := config.SanitizeForLogging(cfg)

	assert.Equal(t, config.RedactedMarker, got.OpenAIAPIKey)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey, "input must not be mutated")

	got.OpenAIAPIKey = cfg.OpenAIAPIKey
	assert.Equal(t, cfg, got, "every other field must be unchanged")
}

func TestSanitizeForLogging_EmptyKeyLeftAsIs(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.OpenAIAPIKey = ""

	assert.Equal(t, cfg, config.SanitizeForLogging(cfg))
}

func TestManager_SanitizeConfigForLoggingDoesNotLoad(t *testing.T) {
	t.Parallel()

	m := config.NewManager(config.WithWorkDir(t.TempDir()), config.WithHomeDir(""))
	got := m.SanitizeConfigForLogging(validConfig())

	assert.Equal(t, config.RedactedMarker, got.OpenAIAPIKey)
	assert.Equal(t, config.Sources{}, m.Sources(), "sanitizing must not populate the cache")
}

func TestConfig_LogValueRedactsKey(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Info("resolved", slog.Any("config", validConfig()))

	out := buf.String()
	assert.NotContains(t, out, "sk-test")
	assert.Contains(t, out, config.RedactedMarker)
	assert.Contains(t, out, `"openai_model":"gpt-4o-mini"`)
}

func TestConfig_Model(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	assert.Equal(t, config.DefaultOpenAIModel, cfg.Model())

	cfg.Provider = config.ProviderLMStudio
	assert.Equal(t, config.DefaultLMStudioModel, cfg.Model())
}
