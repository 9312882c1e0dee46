package service

import (
	"context"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
)

// MockTaskStore is a function-field mock of store.TaskStore.
type MockTaskStore struct {
	CreateFn         func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByIDFn        func(ctx context.Context, id string) (*domain.Task, error)
	UpdateFn         func(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteFn         func(ctx context.Context, id string) error
	ListFn           func(ctx context.Context) ([]*domain.Task, error)
	ListByAssigneeFn func(ctx context.Context, name string) ([]*domain.Task, error)
	ListByCategoryFn func(ctx context.Context, category string) ([]*domain.Task, error)
	CountFn          func(ctx context.Context) (int, error)
}

func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return task, nil
}

func (m *MockTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskStore) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return nil, nil
}

func (m *MockTaskStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.Task{}, nil
}

func (m *MockTaskStore) ListByAssignee(ctx context.Context, name string) ([]*domain.Task, error) {
	if m.ListByAssigneeFn != nil {
		return m.ListByAssigneeFn(ctx, name)
	}
	return []*domain.Task{}, nil
}

func (m *MockTaskStore) ListByCategory(ctx context.Context, category string) ([]*domain.Task, error) {
	if m.ListByCategoryFn != nil {
		return m.ListByCategoryFn(ctx, category)
	}
	return []*domain.Task{}, nil
}

func (m *MockTaskStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// RecordingEmitter captures emitted events.
type RecordingEmitter struct {
	mu     sync.Mutex
	Events []*events.TaskEvent
	Err    error
}

func (e *RecordingEmitter) EmitEvent(ctx context.Context, event *events.TaskEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Events = append(e.Events, event)
	return e.Err
}

func (e *RecordingEmitter) Types() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	types := make([]string, 0, len(e.Events))
	for _, event := range e.Events {
		types = append(types, event.Type)
	}
	return types
}
