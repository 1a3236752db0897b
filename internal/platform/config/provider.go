package config

import (
	"net/url"
)

// checkProviderRequirements enforces fields the active provider cannot run
// without. It runs after schema validation, so Provider is known-good.
func checkProviderRequirements(cfg *Config) error {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return newConfigError(
				"OpenAI API key is required. Set the OPENAI_API_KEY environment variable "+
					"or add openai_api_key to the configuration file",
				nil,
				"provider", string(cfg.Provider),
			)
		}
	case ProviderLMStudio:
		if cfg.LMStudioEndpoint != "" && !isAbsoluteURL(cfg.LMStudioEndpoint) {
			return newConfigError(
				"Invalid LMStudio endpoint URL: "+cfg.LMStudioEndpoint,
				nil,
				"provider", string(cfg.Provider),
				"endpoint", cfg.LMStudioEndpoint,
			)
		}
	}
	return nil
}

// isAbsoluteURL reports whether s parses as a URL with a scheme and host.
// "localhost:1234" parses with scheme "localhost" and no host, so it is
// rejected.
func isAbsoluteURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
