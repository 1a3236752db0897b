package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/documenter/internal/platform/telemetry"
)

// ManagerOption configures a [Manager].
type ManagerOption func(*Manager)

// WithWorkDir sets the directory searched for .env and configuration files.
// Defaults to the process working directory at load time.
func WithWorkDir(dir string) ManagerOption {
	return func(m *Manager) {
		m.workDir = dir
	}
}

// WithHomeDir sets the home directory used for ~/.documenter/.env.
// An empty dir disables the user-global candidate. Defaults to os.UserHomeDir.
func WithHomeDir(dir string) ManagerOption {
	return func(m *Manager) {
		m.homeDir = dir
		m.homeDirSet = true
	}
}

// WithValidator replaces the default [SchemaValidator].
func WithValidator(v Validator) ManagerOption {
	return func(m *Manager) {
		m.validator = v
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithMetrics records load and cache metrics. Nil disables metrics.
func WithMetrics(metrics *telemetry.Metrics) ManagerOption {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// WithTracerProvider sets the provider for the config.Load span. Defaults to
// the global provider.
func WithTracerProvider(tp trace.TracerProvider) ManagerOption {
	return func(m *Manager) {
		m.tracerProvider = tp
	}
}

// Sources records where the cached configuration was read from.
type Sources struct {
	WorkDir    string
	EnvFile    string
	ConfigFile string
}

// Manager resolves and caches the configuration. It is either unloaded (no
// cached config) or loaded; a failed load never writes the cache.
//
// Managers do not share state; the composition root owns one instance and
// passes it to whoever needs configuration. Safe for concurrent use: loads
// are serialized, so concurrent first calls perform a single load.
type Manager struct {
	mu      sync.Mutex
	cached  *Config
	sources Sources

	workDir    string
	homeDir    string
	homeDirSet bool
	validator  Validator
	logger     *slog.Logger
	metrics    *telemetry.Metrics

	tracerProvider trace.TracerProvider
	tracer         trace.Tracer
}

// NewManager creates an unloaded Manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	if m.validator == nil {
		m.validator = NewSchemaValidator()
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}
	if m.tracerProvider == nil {
		m.tracerProvider = otel.GetTracerProvider()
	}
	m.tracer = m.tracerProvider.Tracer(telemetry.InstrumentationScope + "/internal/platform/config")
	return m
}

// LoadConfig runs the full resolution sequence and caches the result,
// replacing any previously cached configuration. Every error it returns is a
// [*ConfigurationError].
func (m *Manager) LoadConfig(ctx context.Context) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(ctx)
}

// GetConfig returns the cached configuration, loading it on first use.
// A cached read performs no I/O and returns the same pointer every time.
//
// The returned Config is shared by every caller until Reset and must be
// treated as read-only. Copy it (the struct has no reference fields) before
// changing anything.
func (m *Manager) GetConfig(ctx context.Context) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getLocked(ctx)
}

// getLocked must be called with m.mu held.
func (m *Manager) getLocked(ctx context.Context) (*Config, error) {
	if m.cached != nil {
		m.metrics.RecordCacheHit(ctx)
		return m.cached, nil
	}
	return m.load(ctx)
}

// Reset discards the cached configuration. The next GetConfig reloads.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cached = nil
	m.sources = Sources{}
}

// Sources reports where the cached configuration came from. It is the zero
// value while unloaded.
func (m *Manager) Sources() Sources {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sources
}

// IsValidForProvider reports whether the active configuration targets p and
// carries the fields p needs. Load failures yield false.
func (m *Manager) IsValidForProvider(ctx context.Context, p Provider) bool {
	cfg, err := m.GetConfig(ctx)
	if err != nil {
		m.logger.DebugContext(ctx, "configuration unavailable for readiness check",
			slog.String("provider", string(p)),
			slog.Any("error", err),
		)
		return false
	}
	if cfg.Provider != p {
		return false
	}

	switch p {
	case ProviderOpenAI:
		return cfg.OpenAIAPIKey != ""
	case ProviderLMStudio:
		return cfg.LMStudioEndpoint != "" && cfg.LMStudioModel != ""
	default:
		return false
	}
}

// ConfigSummary returns a display-safe view of the active configuration.
// The config and its sources are read under one lock, so a concurrent Reset
// cannot pair a config with empty sources.
func (m *Manager) ConfigSummary(ctx context.Context) (Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, err := m.getLocked(ctx)
	if err != nil {
		return Summary{}, err
	}
	return newSummary(cfg, m.sources.WorkDir, m.sources.ConfigFile), nil
}

// SanitizeConfigForLogging returns a redacted copy of cfg. It does not
// touch the cache.
func (m *Manager) SanitizeConfigForLogging(cfg Config) Config {
	return SanitizeForLogging(cfg)
}

// load must be called with m.mu held.
func (m *Manager) load(ctx context.Context) (cfg *Config, err error) {
	ctx, span := m.tracer.Start(ctx, "config.Load")
	start := time.Now()
	defer func() {
		provider := ""
		if cfg != nil {
			provider = string(cfg.Provider)
			span.SetAttributes(attribute.String("config.provider", provider))
		}
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				span.SetAttributes(attribute.StringSlice("config.invalid_fields", verr.Fields()))
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, "configuration load failed")
		}
		span.End()
		m.metrics.RecordLoad(ctx, time.Since(start).Seconds(), provider, err)
	}()

	workDir := m.workDir
	if workDir == "" {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, asConfigError(wdErr)
		}
		workDir = wd
	}

	envFile := NewEnvLoader(workDir, m.resolveHomeDir(), m.logger).Load()

	partial, configFile, err := LoadFile(workDir, m.validator)
	if err != nil {
		return nil, asConfigError(err)
	}

	cfg, err = NewBuilder(m.validator).
		WithDefaults().
		WithEnvironment().
		WithFile(partial).
		Build()
	if err != nil {
		return nil, asConfigError(err)
	}

	m.cached = cfg
	m.sources = Sources{WorkDir: workDir, EnvFile: envFile, ConfigFile: configFile}

	m.logger.DebugContext(ctx, "configuration loaded",
		slog.String("env_file", envFile),
		slog.String("config_file", configFile),
		slog.Any("config", *cfg),
	)

	return cfg, nil
}

func (m *Manager) resolveHomeDir() string {
	if m.homeDirSet {
		return m.homeDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// asConfigError passes ConfigurationErrors through and wraps anything else.
func asConfigError(err error) error {
	var cerr *ConfigurationError
	if errors.As(err, &cerr) {
		return err
	}
	return newConfigError("Failed to load configuration", err)
}
