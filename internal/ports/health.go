package ports

import "context"

// HealthChecker is implemented by any component that can report its health.
// Examples: database connections, report sinks.
type HealthChecker interface {
	// Name returns a human-readable identifier for this component
	// (e.g., "store").
	Name() string

	// HealthCheck performs the health check and returns nil if healthy,
	// or an error describing the failure.
	// Implementations should respect context cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
// Used at startup to refuse to run against an unreachable backend.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll executes all registered health checks and returns results
	// keyed by checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error

	// Ready runs every check and returns nil when all pass, otherwise one
	// error naming each failing component.
	Ready(ctx context.Context) error
}
