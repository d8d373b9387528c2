// Package health provides a thread-safe health check registry for tracking
// the health of backing dependencies such as the roster store. The command
// consults the registry before touching any data and refuses to run against
// an unreachable backend.
package health

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/jsamuelsen11/workforce/internal/ports"
)

// ErrUnhealthy is wrapped by Ready when at least one check fails.
var ErrUnhealthy = errors.New("unhealthy dependency")

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. The slice is copied
// under a read lock so checks run without holding the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}

// Ready runs every check and joins the failures in name order.
func (r *Registry) Ready(ctx context.Context) error {
	results := r.CheckAll(ctx)

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(results)) {
		if err := results[name]; err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrUnhealthy, name, err))
		}
	}
	return errors.Join(errs...)
}
