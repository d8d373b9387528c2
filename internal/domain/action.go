package domain

import "context"

// Action represents a single executable roster change with rollback capability.
//
// Action is defined in the domain layer so that domain packages can describe
// reversible changes without depending on the application layer.
type Action interface {
	// Execute performs the action. The context carries cancellation and
	// deadline signals that the implementation should respect.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description of the action for
	// logging purposes (e.g., "hire employee 7 into Engineering").
	Description() string
}
