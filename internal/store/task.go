package store

import (
	"context"

	"github.com/phrazzld/tasklist/internal/domain"
)

// TaskStore defines the interface for task persistence. It performs no
// ownership checks; callers filter by UserID themselves.
type TaskStore interface {
	// Create saves a new task.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// ListByUser returns every task whose UserID equals userID.
	// Returns an empty slice when none match.
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)

	// UpdateField changes a single mutable field of a task, leaving the others untouched.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateField(ctx context.Context, id string, field domain.TaskField, value string) error

	// Delete removes a task permanently.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}
