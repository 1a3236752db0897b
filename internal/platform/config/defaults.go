package config

// Configuration keys shared by every layer.
const (
	keyProvider               = "provider"
	keyOpenAIAPIKey           = "openai_api_key"
	keyOpenAIModel            = "openai_model"
	keyLMStudioEndpoint       = "lmstudio_endpoint"
	keyLMStudioModel          = "lmstudio_model"
	keyMaxConversationHistory = "max_conversation_history"
	keyDefaultOutputDir       = "default_output_dir"
	keyTimeout                = "timeout"
)

const (
	DefaultProvider               = ProviderOpenAI
	DefaultOpenAIModel            = "gpt-4o-mini"
	DefaultLMStudioEndpoint       = "http://localhost:1234/v1"
	DefaultLMStudioModel          = "local-model"
	DefaultMaxConversationHistory = 10
	DefaultOutputDir              = "./docs"
	// DefaultTimeout is one hour in milliseconds.
	DefaultTimeout = 3_600_000
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by env vars and the config file.
func defaults() map[string]any {
	return map[string]any{
		keyProvider:               string(DefaultProvider),
		keyOpenAIModel:            DefaultOpenAIModel,
		keyLMStudioEndpoint:       DefaultLMStudioEndpoint,
		keyLMStudioModel:          DefaultLMStudioModel,
		keyMaxConversationHistory: DefaultMaxConversationHistory,
		keyDefaultOutputDir:       DefaultOutputDir,
		keyTimeout:                DefaultTimeout,
	}
}
