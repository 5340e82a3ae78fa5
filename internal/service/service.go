// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// Every mutating call loads the collection, applies one change and persists
// it before returning. Commands never touch the storage format directly.
type Service interface {
	// EnsureExists creates an empty store if none exists yet.
	// Reports whether it had to be created.
	EnsureExists(ctx context.Context) (bool, error)

	// Add creates a todo task and returns it with its new id.
	Add(ctx context.Context, description string) (Task, error)

	// Update replaces the description of task id.
	Update(ctx context.Context, id int, description string) (Task, error)

	// Delete removes task id.
	Delete(ctx context.Context, id int) error

	// SetStatus moves task id to status.
	SetStatus(ctx context.Context, id int, status Status) (Task, error)

	// List returns the tasks with status, or all tasks if status is empty.
	// Results keep the stored order.
	List(ctx context.Context, status Status) ([]Task, error)
}
