package ports

import "context"

// HealthChecker is implemented by any component that can report whether it
// is ready for use. Examples: a configured LLM provider, an output directory.
type HealthChecker interface {
	// Name returns a human-readable identifier for this component
	// (e.g., "openai", "lmstudio").
	Name() string

	// HealthCheck returns nil if the component is ready, or an error
	// describing what is missing.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
// Used by the doctor command to report readiness.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll executes all registered health checks and returns results
	// keyed by checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
