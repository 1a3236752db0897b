package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
)

// Recognized environment variables and the keys they set.
const (
	EnvProvider               = "LLM_PROVIDER"
	EnvOpenAIAPIKey           = "OPENAI_API_KEY"
	EnvOpenAIModel            = "OPENAI_MODEL"
	EnvLMStudioEndpoint       = "LMSTUDIO_ENDPOINT"
	EnvLMStudioModel          = "LMSTUDIO_MODEL"
	EnvMaxConversationHistory = "MAX_CONVERSATION_HISTORY"
	EnvDefaultOutputDir       = "DEFAULT_OUTPUT_DIR"
	EnvTimeout                = "LLM_TIMEOUT"
)

var envKeys = map[string]string{
	EnvProvider:               keyProvider,
	EnvOpenAIAPIKey:           keyOpenAIAPIKey,
	EnvOpenAIModel:            keyOpenAIModel,
	EnvLMStudioEndpoint:       keyLMStudioEndpoint,
	EnvLMStudioModel:          keyLMStudioModel,
	EnvMaxConversationHistory: keyMaxConversationHistory,
	EnvDefaultOutputDir:       keyDefaultOutputDir,
	EnvTimeout:                keyTimeout,
}

// BuilderOption configures a [Builder].
type BuilderOption func(*Builder)

// WithEnviron replaces os.Environ as the source for [Builder.WithEnvironment].
func WithEnviron(fn func() []string) BuilderOption {
	return func(b *Builder) {
		b.environ = fn
	}
}

// Builder accumulates configuration layers in call order; each layer
// overwrites only the keys it defines. Call order is the precedence order:
//
//	cfg, err := config.NewBuilder(v).
//	    WithDefaults().
//	    WithEnvironment().
//	    WithFile(partial).
//	    Build()
//
// A Builder is single-use and not safe for concurrent use.
type Builder struct {
	k         *koanf.Koanf
	validator Validator
	environ   func() []string
	err       error
}

// NewBuilder creates an empty builder. A nil validator selects
// [NewSchemaValidator].
func NewBuilder(v Validator, opts ...BuilderOption) *Builder {
	if v == nil {
		v = NewSchemaValidator()
	}
	b := &Builder{
		k:         koanf.New("."),
		validator: v,
		environ:   os.Environ,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithDefaults seeds every field with its built-in default.
func (b *Builder) WithDefaults() *Builder {
	b.load(confmap.Provider(defaults(), "."), "defaults")
	return b
}

// WithEnvironment applies the recognized environment variables. Empty values,
// unknown providers and non-positive or non-numeric integers are ignored,
// keeping the previous value.
func (b *Builder) WithEnvironment() *Builder {
	b.load(env.Provider(".", env.Opt{
		EnvironFunc:   b.environ,
		TransformFunc: transformEnv,
	}), "environment")
	return b
}

// WithFile applies the fields present in p. An empty p is a no-op.
func (b *Builder) WithFile(p Partial) *Builder {
	if p.IsEmpty() {
		return b
	}
	b.load(confmap.Provider(p.values(), "."), "file")
	return b
}

// Build validates the accumulated configuration and applies the
// provider-specific requirements.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.k.String(keyProvider) == "" {
		return nil, newConfigError("Provider must be specified", nil)
	}

	var cfg Config
	if err := b.k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, newConfigError("Failed to decode configuration", err)
	}

	if err := b.validator.Validate(&cfg, ModeFinal); err != nil {
		return nil, newConfigError("Invalid configuration", err,
			"violations", violationStrings(err),
		)
	}

	if err := checkProviderRequirements(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (b *Builder) load(p koanf.Provider, layer string) {
	if b.err != nil {
		return
	}
	if err := b.k.Load(p, nil); err != nil {
		b.err = newConfigError("Failed to apply "+layer+" layer", err, "layer", layer)
	}
}

// transformEnv maps a recognized variable to its key. An empty key tells the
// env provider to skip the variable.
func transformEnv(name, value string) (string, any) {
	key, ok := envKeys[name]
	if !ok || value == "" {
		return "", nil
	}

	switch key {
	case keyProvider:
		p, ok := ParseProvider(value)
		if !ok {
			return "", nil
		}
		return key, string(p)
	case keyMaxConversationHistory, keyTimeout:
		n, ok := positiveInt(value)
		if !ok {
			return "", nil
		}
		return key, n
	default:
		return key, value
	}
}

func positiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
