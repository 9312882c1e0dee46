package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// CreateTaskParams carries the fields a caller supplies when creating a task.
type CreateTaskParams struct {
	Title       string
	Description string
	DueDate     time.Time
	AssignedTo  string
	Category    string
}

// TaskService provides task-related operations
type TaskService interface {
	// CreateTask validates and stores a new task with status Pending.
	CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// GetTask retrieves a task by its ID.
	GetTask(ctx context.Context, id string) (*domain.Task, error)

	// UpdateTask applies a partial update to an existing task.
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id string) error

	// ListTasks returns every task in insertion order.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// ListTasksByAssignee returns tasks assigned to name, ignoring case.
	ListTasksByAssignee(ctx context.Context, name string) ([]*domain.Task, error)

	// ListTasksByCategory returns tasks in category, ignoring case.
	ListTasksByCategory(ctx context.Context, category string) ([]*domain.Task, error)
}

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "update_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// Not-found errors are returned directly without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrTaskNotFound) {
		return store.ErrTaskNotFound
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks   store.TaskStore
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any required dependency is nil.
func NewTaskService(
	tasks store.TaskStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if tasks == nil {
		return nil, fmt.Errorf("task store cannot be nil")
	}
	if emitter == nil {
		return nil, fmt.Errorf("event emitter cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &taskServiceImpl{
		tasks:   tasks,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.
func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(params.Title, params.Description, params.DueDate, params.AssignedTo, params.Category)
	if err != nil {
		log.Debug("task validation failed", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "invalid task", errors.Join(store.ErrInvalidEntity, err))
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, NewTaskServiceError("create_task", "failed to store task", err)
	}

	log.Info("task created", slog.String("task_id", created.ID))
	s.emit(ctx, events.TypeTaskCreated, created.ID, created)
	return created, nil
}

// GetTask implements TaskService.
func (s *taskServiceImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// UpdateTask implements TaskService.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	updated, err := s.tasks.Update(ctx, id, patch)
	if err != nil {
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	if patch.IsEmpty() {
		log.Debug("empty update, task unchanged", slog.String("task_id", id))
		return updated, nil
	}

	log.Info("task updated", slog.String("task_id", id))
	s.emit(ctx, events.TypeTaskUpdated, id, updated)
	return updated, nil
}

// DeleteTask implements TaskService.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.tasks.Delete(ctx, id); err != nil {
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", slog.String("task_id", id))
	s.emit(ctx, events.TypeTaskDeleted, id, nil)
	return nil
}

// ListTasks implements TaskService.
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// ListTasksByAssignee implements TaskService.
func (s *taskServiceImpl) ListTasksByAssignee(ctx context.Context, name string) ([]*domain.Task, error) {
	tasks, err := s.tasks.ListByAssignee(ctx, name)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks_by_assignee", "failed to list tasks", err)
	}
	return tasks, nil
}

// ListTasksByCategory implements TaskService.
func (s *taskServiceImpl) ListTasksByCategory(ctx context.Context, category string) ([]*domain.Task, error) {
	tasks, err := s.tasks.ListByCategory(ctx, category)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks_by_category", "failed to list tasks", err)
	}
	return tasks, nil
}

// emit publishes a lifecycle event. Failures are logged and never returned:
// the change has already been committed to the store.
func (s *taskServiceImpl) emit(ctx context.Context, eventType, taskID string, payload interface{}) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewTaskEvent(eventType, taskID, payload)
	if err != nil {
		log.Error("failed to build task event",
			slog.String("event_type", eventType),
			slog.String("task_id", taskID),
			slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit task event",
			slog.String("event_type", eventType),
			slog.String("task_id", taskID),
			slog.String("error", err.Error()))
	}
}
