package api

import (
	"time"

	"github.com/phrazzld/task-api/internal/domain"
)

// CreateTaskRequest defines the payload for POST /task.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"     validate:"required,iso8601"`
	AssignedTo  string `json:"assignedTo"  validate:"required"`
	Category    string `json:"category"    validate:"required"`
}

// UpdateTaskRequest defines the payload for PUT /task/{id}.
// Absent (or null) fields are left unchanged; present fields are applied,
// including empty strings.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"     validate:"omitempty,iso8601"`
	AssignedTo  *string `json:"assignedTo"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreationDate time.Time `json:"creationDate"`
	DueDate      time.Time `json:"dueDate"`
	AssignedTo   string    `json:"assignedTo"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
}

// toPatch converts the request into a domain patch, parsing the due date if present.
func (req UpdateTaskRequest) toPatch() (domain.TaskPatch, error) {
	patch := domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Category:    req.Category,
		Status:      req.Status,
	}

	if req.DueDate != nil {
		dueDate, err := domain.ParseDueDate(*req.DueDate)
		if err != nil {
			return domain.TaskPatch{}, err
		}
		patch.DueDate = &dueDate
	}

	return patch, nil
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		CreationDate: task.CreationDate,
		DueDate:      task.DueDate,
		AssignedTo:   task.AssignedTo,
		Category:     task.Category,
		Status:       task.Status,
	}
}

// tasksToResponse converts a slice of tasks; the result is never nil so it
// always encodes as a JSON array.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	response := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, taskToResponse(task))
	}
	return response
}
