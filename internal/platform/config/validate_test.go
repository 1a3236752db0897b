package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/documenter/internal/platform/config"
)

func TestSchemaValidator_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, config.NewSchemaValidator().Validate(&cfg, config.ModeFinal))
}

func TestSchemaValidator_FinalModeViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *config.Config)
		field  string
	}{
		{name: "missing provider", mutate: func(c *config.Config) { c.Provider = "" }, field: "provider"},
		{name: "unknown provider", mutate: func(c *config.Config) { c.Provider = "anthropic" }, field: "provider"},
		{name: "empty openai model", mutate: func(c *config.Config) { c.OpenAIModel = "" }, field: "openai_model"},
		{name: "empty lmstudio model", mutate: func(c *config.Config) { c.LMStudioModel = "" }, field: "lmstudio_model"},
		{name: "zero history", mutate: func(c *config.Config) { c.MaxConversationHistory = 0 }, field: "max_conversation_history"},
		{name: "empty output dir", mutate: func(c *config.Config) { c.DefaultOutputDir = "" }, field: "default_output_dir"},
		{name: "negative timeout", mutate: func(c *config.Config) { c.Timeout = -1 }, field: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := config.NewSchemaValidator().Validate(&cfg, config.ModeFinal)
			require.Error(t, err)

			var verr *config.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, []string{tt.field}, verr.Fields())
		})
	}
}

func TestSchemaValidator_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	cfg := config.Config{}
	err := config.NewSchemaValidator().Validate(cfg, config.ModeFinal)

	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{
		"provider",
		"openai_model",
		"lmstudio_model",
		"max_conversation_history",
		"default_output_dir",
		"timeout",
	}, verr.Fields())
}

func TestSchemaValidator_ViolationDoesNotEchoValue(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Provider = "sk-secret-looking-provider"

	err := config.NewSchemaValidator().Validate(&cfg, config.ModeFinal)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "sk-secret-looking-provider")
	assert.Contains(t, err.Error(), "must be one of: openai, lmstudio")
}

func TestSchemaValidator_FileModeAllowsEmptyPartial(t *testing.T) {
	t.Parallel()

	require.NoError(t, config.NewSchemaValidator().Validate(&config.Partial{}, config.ModeFile))
}

func TestSchemaValidator_ModeTypeMismatch(t *testing.T) {
	t.Parallel()

	v := config.NewSchemaValidator()
	cfg := validConfig()

	err := v.Validate(&cfg, config.ModeFile)
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrConfiguration)

	err = v.Validate(&config.Partial{}, config.ModeFinal)
	require.Error(t, err)

	err = v.Validate(&cfg, config.Mode("lenient"))
	require.Error(t, err)
}

func validConfig() config.Config {
	return config.Config{
		Provider:               config.ProviderOpenAI,
		OpenAIAPIKey:           "sk-test",
		OpenAIModel:            config.DefaultOpenAIModel,
		LMStudioEndpoint:       config.DefaultLMStudioEndpoint,
		LMStudioModel:          config.DefaultLMStudioModel,
		MaxConversationHistory: config.DefaultMaxConversationHistory,
		DefaultOutputDir:       config.DefaultOutputDir,
		Timeout:                config.DefaultTimeout,
	}
}
