package store

import (
	"context"

	"github.com/phrazzld/task-api/internal/domain"
)

// TaskStore defines the interface for task data storage.
// Implementations own the task collection and return copies, so callers
// never hold references into the store.
type TaskStore interface {
	// Create assigns a new ID to the task and saves it.
	// Returns ErrInvalidEntity (wrapping the domain error) if the task is invalid.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// Update applies the patch to an existing task and returns the result.
	// Returns ErrTaskNotFound if the task does not exist.
	// Returns ErrInvalidEntity if the patch would leave the task invalid.
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error

	// List returns all tasks in insertion order.
	// Returns an empty slice if the store is empty.
	List(ctx context.Context) ([]*domain.Task, error)

	// ListByAssignee returns the tasks whose assignee matches name, ignoring case.
	ListByAssignee(ctx context.Context, name string) ([]*domain.Task, error)

	// ListByCategory returns the tasks whose category matches category, ignoring case.
	ListByCategory(ctx context.Context, category string) ([]*domain.Task, error)

	// Count returns the number of stored tasks.
	Count(ctx context.Context) (int, error)
}
