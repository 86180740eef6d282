package domain

import "context"

// Action is a write with a compensating rollback. Application services stage
// actions and execute them together so a failure part way through can undo
// the writes that already landed.
type Action interface {
	// Execute performs the write.
	Execute(ctx context.Context) error

	// Rollback reverses a previously successful Execute. It is never called
	// for an action whose Execute failed.
	Rollback(ctx context.Context) error

	// Description names the action for logs (e.g. "complete task 7").
	Description() string
}
