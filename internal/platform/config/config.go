// Package config resolves the runtime configuration of the documenter CLI.
// Configuration is assembled from layers, highest precedence last:
// defaults -> environment variables -> project configuration file.
//
// A .env file (project-local, then ~/.documenter/.env) may seed the process
// environment before the environment layer is read; variables already set in
// the process are never overridden.
//
// Resolution goes through a [Manager], which caches the validated [Config]
// until [Manager.Reset] is called:
//
//	mgr := config.NewManager(config.WithLogger(logger))
//	cfg, err := mgr.GetConfig(ctx)
package config

import (
	"log/slog"
	"strings"
)

// Provider identifies the LLM backend the CLI talks to.
type Provider string

// Supported providers.
const (
	ProviderOpenAI   Provider = "openai"
	ProviderLMStudio Provider = "lmstudio"
)

// Providers lists every supported provider in display order.
var Providers = []Provider{ProviderOpenAI, ProviderLMStudio}

// ParseProvider matches s case-insensitively against the supported providers.
func ParseProvider(s string) (Provider, bool) {
	for _, p := range Providers {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, true
		}
	}
	return "", false
}

// Config holds the validated configuration for the CLI.
type Config struct {
	Provider               Provider `koanf:"provider" json:"provider" validate:"required,oneof=openai lmstudio"`
	OpenAIAPIKey           string   `koanf:"openai_api_key" json:"openai_api_key,omitempty" masq:"secret"`
	OpenAIModel            string   `koanf:"openai_model" json:"openai_model" validate:"required"`
	LMStudioEndpoint       string   `koanf:"lmstudio_endpoint" json:"lmstudio_endpoint,omitempty"`
	LMStudioModel          string   `koanf:"lmstudio_model" json:"lmstudio_model" validate:"required"`
	MaxConversationHistory int      `koanf:"max_conversation_history" json:"max_conversation_history" validate:"gt=0"`
	DefaultOutputDir       string   `koanf:"default_output_dir" json:"default_output_dir" validate:"required"`
	// Timeout is in milliseconds and applies to downstream LLM calls.
	Timeout int `koanf:"timeout" json:"timeout" validate:"gt=0"`
}

// Model returns the model identifier for the active provider.
func (c Config) Model() string {
	if c.Provider == ProviderLMStudio {
		return c.LMStudioModel
	}
	return c.OpenAIModel
}

// LogValue implements slog.LogValuer. The API key is always redacted.
func (c Config) LogValue() slog.Value {
	s := SanitizeForLogging(c)
	return slog.GroupValue(
		slog.String("provider", string(s.Provider)),
		slog.String("openai_api_key", s.OpenAIAPIKey),
		slog.String("openai_model", s.OpenAIModel),
		slog.String("lmstudio_endpoint", s.LMStudioEndpoint),
		slog.String("lmstudio_model", s.LMStudioModel),
		slog.Int("max_conversation_history", s.MaxConversationHistory),
		slog.String("default_output_dir", s.DefaultOutputDir),
		slog.Int("timeout", s.Timeout),
	)
}

// Partial is a subset of [Config] produced by a single layer. Nil fields are
// absent; present fields must satisfy their own constraints.
type Partial struct {
	Provider               *Provider `koanf:"provider" validate:"omitempty,oneof=openai lmstudio"`
	OpenAIAPIKey           *string   `koanf:"openai_api_key" masq:"secret"`
	OpenAIModel            *string   `koanf:"openai_model" validate:"omitempty,min=1"`
	LMStudioEndpoint       *string   `koanf:"lmstudio_endpoint"`
	LMStudioModel          *string   `koanf:"lmstudio_model" validate:"omitempty,min=1"`
	MaxConversationHistory *int      `koanf:"max_conversation_history" validate:"omitempty,gt=0"`
	DefaultOutputDir       *string   `koanf:"default_output_dir" validate:"omitempty,min=1"`
	Timeout                *int      `koanf:"timeout" validate:"omitempty,gt=0"`
}

// IsEmpty reports whether no field is present.
func (p Partial) IsEmpty() bool {
	return len(p.values()) == 0
}

// values flattens the present fields into koanf keys.
func (p Partial) values() map[string]any {
	m := make(map[string]any, 8)
	if p.Provider != nil {
		m[keyProvider] = string(*p.Provider)
	}
	if p.OpenAIAPIKey != nil {
		m[keyOpenAIAPIKey] = *p.OpenAIAPIKey
	}
	if p.OpenAIModel != nil {
		m[keyOpenAIModel] = *p.OpenAIModel
	}
	if p.LMStudioEndpoint != nil {
		m[keyLMStudioEndpoint] = *p.LMStudioEndpoint
	}
	if p.LMStudioModel != nil {
		m[keyLMStudioModel] = *p.LMStudioModel
	}
	if p.MaxConversationHistory != nil {
		m[keyMaxConversationHistory] = *p.MaxConversationHistory
	}
	if p.DefaultOutputDir != nil {
		m[keyDefaultOutputDir] = *p.DefaultOutputDir
	}
	if p.Timeout != nil {
		m[keyTimeout] = *p.Timeout
	}
	return m
}
