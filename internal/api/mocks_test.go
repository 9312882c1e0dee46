package api

import (
	"context"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/service"
)

// MockTaskService implements service.TaskService with overridable functions.
type MockTaskService struct {
	CreateTaskFn          func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error)
	GetTaskFn             func(ctx context.Context, id string) (*domain.Task, error)
	UpdateTaskFn          func(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTaskFn          func(ctx context.Context, id string) error
	ListTasksFn           func(ctx context.Context) ([]*domain.Task, error)
	ListTasksByAssigneeFn func(ctx context.Context, name string) ([]*domain.Task, error)
	ListTasksByCategoryFn func(ctx context.Context, category string) ([]*domain.Task, error)
}

var _ service.TaskService = (*MockTaskService)(nil)

func (m *MockTaskService) CreateTask(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, params)
	}
	return nil, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, patch)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id string) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return nil
}

func (m *MockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return nil, nil
}

func (m *MockTaskService) ListTasksByAssignee(ctx context.Context, name string) ([]*domain.Task, error) {
	if m.ListTasksByAssigneeFn != nil {
		return m.ListTasksByAssigneeFn(ctx, name)
	}
	return nil, nil
}

func (m *MockTaskService) ListTasksByCategory(ctx context.Context, category string) ([]*domain.Task, error) {
	if m.ListTasksByCategoryFn != nil {
		return m.ListTasksByCategoryFn(ctx, category)
	}
	return nil, nil
}
