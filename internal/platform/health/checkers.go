package health

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsamuelsen11/documenter/internal/platform/config"
	"github.com/jsamuelsen11/documenter/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.HealthChecker = (*ProviderChecker)(nil)
	_ ports.HealthChecker = (*OutputDirChecker)(nil)
)

// ErrProviderInactive is returned when the checked provider is not the one
// selected by the configuration.
var ErrProviderInactive = errors.New("provider is not active")

// ErrProviderIncomplete is returned when the active provider lacks a field it
// needs (API key, endpoint, or model).
var ErrProviderIncomplete = errors.New("provider configuration is incomplete")

// ProviderChecker reports whether one LLM provider is selected and fully
// configured.
type ProviderChecker struct {
	manager  ports.ConfigManager
	provider config.Provider
}

// NewProviderChecker creates a checker for provider p backed by manager.
func NewProviderChecker(manager ports.ConfigManager, p config.Provider) *ProviderChecker {
	return &ProviderChecker{manager: manager, provider: p}
}

// Name returns the provider identifier.
func (c *ProviderChecker) Name() string {
	return string(c.provider)
}

// HealthCheck returns the load error if configuration cannot be resolved,
// [ErrProviderInactive] if another provider is selected, and
// [ErrProviderIncomplete] if required fields are missing.
func (c *ProviderChecker) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg, err := c.manager.GetConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Provider != c.provider {
		return fmt.Errorf("%w: active provider is %s", ErrProviderInactive, cfg.Provider)
	}
	if !c.manager.IsValidForProvider(ctx, c.provider) {
		return fmt.Errorf("%w: %s", ErrProviderIncomplete, c.provider)
	}
	return nil
}

// OutputDirChecker reports whether the configured default output directory
// exists as a directory or can be created under an existing parent.
type OutputDirChecker struct {
	manager ports.ConfigManager
}

// NewOutputDirChecker creates a checker for default_output_dir.
func NewOutputDirChecker(manager ports.ConfigManager) *OutputDirChecker {
	return &OutputDirChecker{manager: manager}
}

// Name returns "output_dir".
func (c *OutputDirChecker) Name() string {
	return "output_dir"
}

// HealthCheck stats the output directory relative to the working directory
// the configuration was loaded from.
func (c *OutputDirChecker) HealthCheck(ctx context.Context) error {
	cfg, err := c.manager.GetConfig(ctx)
	if err != nil {
		return err
	}

	dir := cfg.DefaultOutputDir
	if !filepath.IsAbs(dir) {
		if wd := c.manager.Sources().WorkDir; wd != "" {
			dir = filepath.Join(wd, dir)
		}
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("output path %s is not a directory", dir)
	case errors.Is(err, os.ErrNotExist):
		parent, perr := os.Stat(filepath.Dir(dir))
		if perr != nil || !parent.IsDir() {
			return fmt.Errorf("output directory %s cannot be created: parent does not exist", dir)
		}
		return nil
	default:
		return fmt.Errorf("checking output directory %s: %w", dir, err)
	}
}
