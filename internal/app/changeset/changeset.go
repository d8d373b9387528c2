// Package changeset stages reversible domain actions and applies them as a
// unit: either every action succeeds or the completed ones are rolled back.
//
//	cs := changeset.New()
//	cs.Add(changeset.Func{Desc: "open department IT", Do: open, Undo: close})
//	cs.Add(changeset.Func{Desc: "hire employee 7", Do: hire, Undo: dismiss})
//	err := cs.Commit(ctx)
//
// A Changeset is not safe for concurrent use.
package changeset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/workforce/internal/domain"
	"github.com/jsamuelsen11/workforce/internal/platform/logging"
)

// ErrAlreadyCommitted is returned when Add or Commit is called on a
// Changeset that has already been committed.
var ErrAlreadyCommitted = errors.New("changeset: already committed")

// ErrNilAction is returned when a nil Action is passed to Add.
var ErrNilAction = errors.New("changeset: nil action")

// Changeset is an ordered queue of actions applied by Commit.
type Changeset struct {
	actions   []domain.Action
	committed bool
}

// New returns an empty Changeset.
func New() *Changeset {
	return &Changeset{}
}

// Add stages an action for Commit.
func (c *Changeset) Add(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	if c.committed {
		return ErrAlreadyCommitted
	}
	c.actions = append(c.actions, action)
	return nil
}

// Len returns the number of staged actions.
func (c *Changeset) Len() int {
	return len(c.actions)
}

// Commit executes staged actions in insertion order. If one fails, the
// actions that completed are rolled back in reverse order and the failure
// is returned wrapped with the action description. Rollback errors are
// logged and do not stop the remaining rollbacks.
//
// The Changeset is marked committed whether or not Commit succeeds.
func (c *Changeset) Commit(ctx context.Context) error {
	if c.committed {
		return ErrAlreadyCommitted
	}
	c.committed = true

	logger := logging.FromContext(ctx)

	for i, action := range c.actions {
		if err := ctx.Err(); err != nil {
			c.rollback(ctx, i-1, logger)
			return fmt.Errorf("before %s: %w", action.Description(), err)
		}

		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "Changeset.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(c.actions)),
			slog.String("action", action.Description()),
		)

		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, initiating rollback",
				slog.String("operation", "Changeset.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			c.rollback(ctx, i-1, logger)
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}

	return nil
}

// rollback reverses actions 0..upTo (inclusive) in reverse order. It uses a
// context detached from cancellation so a cancelled commit still unwinds.
func (c *Changeset) rollback(ctx context.Context, upTo int, logger *slog.Logger) {
	ctx = context.WithoutCancel(ctx)
	for i := upTo; i >= 0; i-- {
		action := c.actions[i]

		logger.InfoContext(ctx, "rolling back action",
			slog.String("operation", "Changeset.Commit"),
			slog.Int("step", i+1),
			slog.String("action", action.Description()),
		)

		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "Changeset.Commit"),
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
		}
	}
}

// Func adapts a pair of functions to domain.Action. A nil Undo makes
// Rollback a no-op.
type Func struct {
	Desc string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

var _ domain.Action = Func{}

func (f Func) Execute(ctx context.Context) error { return f.Do(ctx) }

func (f Func) Rollback(ctx context.Context) error {
	if f.Undo == nil {
		return nil
	}
	return f.Undo(ctx)
}

func (f Func) Description() string { return f.Desc }
