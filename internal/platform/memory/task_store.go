package memory

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskStore implements store.TaskStore in memory.
//
// Tasks are kept in a map keyed by ID plus a slice recording insertion order.
// IDs come from a counter that only ever increases, so an ID is never reused
// after a deletion. A single RWMutex guards all state.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[string]*domain.Task
	order  []string
	nextID uint64
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty TaskStore.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskStore")
	}

	return &TaskStore{
		tasks:  make(map[string]*domain.Task),
		order:  make([]string, 0),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Create implements store.TaskStore.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Debug("rejecting invalid task", slog.String("error", err.Error()))
		return nil, store.InvalidEntityError("task", "create", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *task
	stored.ID = strconv.FormatUint(s.nextID, 10)

	s.tasks[stored.ID] = &stored
	s.order = append(s.order, stored.ID)

	log.Debug("task stored", slog.String("task_id", stored.ID), slog.Int("task_count", len(s.order)))

	result := stored
	return &result, nil
}

// GetByID implements store.TaskStore.
func (s *TaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	result := *task
	return &result, nil
}

// Update implements store.TaskStore.
func (s *TaskStore) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	if err := patch.Apply(task); err != nil {
		log.Debug("rejecting invalid task update",
			slog.String("task_id", id),
			slog.String("error", err.Error()))
		return nil, store.InvalidEntityError("task", "update", err)
	}

	result := *task
	return &result, nil
}

// Delete implements store.TaskStore.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}

	delete(s.tasks, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	log.Debug("task removed", slog.String("task_id", id), slog.Int("task_count", len(s.order)))
	return nil
}

// List implements store.TaskStore.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	return s.filter(func(*domain.Task) bool { return true }), nil
}

// ListByAssignee implements store.TaskStore.
func (s *TaskStore) ListByAssignee(ctx context.Context, name string) ([]*domain.Task, error) {
	return s.filter(func(t *domain.Task) bool { return t.IsAssignedTo(name) }), nil
}

// ListByCategory implements store.TaskStore.
func (s *TaskStore) ListByCategory(ctx context.Context, category string) ([]*domain.Task, error) {
	return s.filter(func(t *domain.Task) bool { return t.InCategory(category) }), nil
}

// Count implements store.TaskStore.
func (s *TaskStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}

// filter returns copies of the tasks matching keep, in insertion order.
// The result is never nil.
func (s *TaskStore) filter(keep func(*domain.Task) bool) []*domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Task, 0, len(s.order))
	for _, id := range s.order {
		task := s.tasks[id]
		if keep(task) {
			copied := *task
			result = append(result, &copied)
		}
	}
	return result
}
