package ports

import (
	"context"

	"github.com/jsamuelsen11/documenter/internal/platform/config"
)

// ConfigManager resolves, caches, and reports on the tool configuration.
// Implemented by [config.Manager].
type ConfigManager interface {
	// GetConfig returns the cached configuration, loading it on first use.
	// The pointer is shared across callers and must not be modified.
	GetConfig(ctx context.Context) (*config.Config, error)

	// Reset discards the cached configuration.
	Reset()

	// IsValidForProvider reports whether the active configuration targets p
	// and carries every field p needs.
	IsValidForProvider(ctx context.Context, p config.Provider) bool

	// ConfigSummary returns a display-safe view of the active configuration.
	ConfigSummary(ctx context.Context) (config.Summary, error)

	// SanitizeConfigForLogging returns a copy of cfg with secrets replaced.
	SanitizeConfigForLogging(cfg config.Config) config.Config

	// Sources reports which files the cached configuration was read from.
	Sources() config.Sources
}

// Compile-time interface check.
var _ ConfigManager = (*config.Manager)(nil)
