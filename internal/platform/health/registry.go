// Package health provides a thread-safe readiness registry. Checkers report
// whether the configured LLM provider and output location are usable; the
// doctor command runs them all and prints the results.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/documenter/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// Names returns the registered checker names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checkers))
	for _, c := range r.checkers {
		names = append(names, c.Name())
	}
	return names
}

// maxConcurrentChecks bounds how many checks run at once.
const maxConcurrentChecks = 4

// CheckAll executes all registered checks concurrently and returns results
// keyed by checker name. Nil values indicate ready components. The slice is
// copied under a read lock so checks run without holding the lock. When two
// checkers share a name, the later registration wins.
//
// A check still waiting for a worker slot when ctx is canceled records
// ctx.Err() without running.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	sem := make(chan struct{}, maxConcurrentChecks)

	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}
			errs[i] = c.HealthCheck(ctx)
		}()
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
