package config

// RedactedMarker replaces secret values in sanitized output.
const RedactedMarker = "[REDACTED]"

// SanitizeForLogging returns a copy of cfg with the API key replaced by
// [RedactedMarker]. An empty key is left as is.
func SanitizeForLogging(cfg Config) Config {
	if cfg.OpenAIAPIKey != "" {
		cfg.OpenAIAPIKey = RedactedMarker
	}
	return cfg
}

// Summary is a display-safe projection of the active configuration.
type Summary struct {
	Provider         Provider `json:"provider"`
	Model            string   `json:"model"`
	WorkingDirectory string   `json:"working_directory"`
	Endpoint         string   `json:"endpoint,omitempty"`
	ConfigFile       string   `json:"config_file,omitempty"`
}

func newSummary(cfg *Config, workDir, configFile string) Summary {
	s := Summary{
		Provider:         cfg.Provider,
		Model:            cfg.Model(),
		WorkingDirectory: workDir,
		ConfigFile:       configFile,
	}
	if cfg.Provider == ProviderLMStudio && cfg.LMStudioEndpoint != "" {
		s.Endpoint = cfg.LMStudioEndpoint
	}
	return s
}
